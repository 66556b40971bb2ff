// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"emittance/conlog"
	"emittance/pack"

	"github.com/pkg/errors"
)

// AudioExtensions are probed in order when an asset is named without one.
var AudioExtensions = []string{".ogg", ".wav", ".mp3"}

var (
	baseDir string
	paks    []*pack.Pack // later ones override earlier ones
	mutex   sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir makes dir the root of all lookups and mounts its pak0.pak,
// pak1.pak, ... until the first missing one. Loose files in dir override
// files in the paks.
func UseBaseDir(dir string) error {
	mutex.Lock()
	defer mutex.Unlock()
	closePaks()
	baseDir = dir
	for i := 0; ; i++ {
		pfp := filepath.Join(dir, fmt.Sprintf("pak%d.pak", i))
		if _, err := os.Stat(pfp); err != nil {
			break
		}
		p, err := pack.NewPackReader(pfp)
		if err != nil {
			closePaks()
			return err
		}
		paks = append(paks, p)
		conlog.Printf("Added packfile %s (%d files, crc %04x)\n", pfp, len(p.Names()), p.Checksum())
	}
	return nil
}

// Close unmounts all paks.
func Close() {
	mutex.Lock()
	defer mutex.Unlock()
	closePaks()
	baseDir = ""
}

func closePaks() {
	for _, p := range paks {
		p.Close()
	}
	paks = nil
}

// Paks returns the names of the mounted paks in mount order.
func Paks() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	r := make([]string, 0, len(paks))
	for _, p := range paks {
		r = append(r, p.String())
	}
	return r
}

func clean(name string) string {
	// inside a pack file there is no 'root'. all files are relative to '.'
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	name = clean(name)
	f, err := os.Open(filepath.Join(baseDir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	for i := len(paks) - 1; i >= 0; i-- {
		if !paks[i].Has(name) {
			continue
		}
		sr, err := paks[i].Open(name)
		if err != nil {
			return nil, err
		}
		return &closer{sr}, nil
	}
	return nil, errors.Wrap(os.ErrNotExist, name)
}

func Exists(name string) bool {
	f, err := Open(name)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// ResolveAudio opens the asset "folder/name" below audio/. Unless the
// name ends in one of AudioExtensions every entry is tried in order. The
// returned extension selects the decoder.
func ResolveAudio(name string) (File, string, error) {
	p := path.Join("audio", clean(name))
	if ext := audioExt(p); ext != "" {
		f, err := Open(p)
		return f, ext, err
	}
	for _, ext := range AudioExtensions {
		f, err := Open(p + ext)
		if err == nil {
			return f, ext, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}
	return nil, "", errors.Wrapf(os.ErrNotExist, "no audio file for %s", name)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

// audioExt returns the extension of p if it is a known audio extension.
func audioExt(p string) string {
	ext := Ext(p)
	for _, e := range AudioExtensions {
		if strings.EqualFold(ext, e) {
			return e
		}
	}
	return ""
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
