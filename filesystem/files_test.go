// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"emittance/pack"

	"github.com/pkg/errors"
)

func writePak(t *testing.T, name string, files []pack.File) {
	t.Helper()
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := pack.Write(f, files); err != nil {
		t.Fatal(err)
	}
}

func writeLoose(t *testing.T, dir, name, data string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePak(t, filepath.Join(dir, "pak0.pak"), []pack.File{
		{Name: "doc1.txt", Data: []byte("this is the first doc\r\n")},
		{Name: "doc2.txt", Data: []byte("this is the second doc")},
		{Name: "audio/bgs/Drips.wav", Data: []byte("old drips")},
	})
	writePak(t, filepath.Join(dir, "pak1.pak"), []pack.File{
		{Name: "doc1.txt", Data: []byte("this is the first doc 2. version\r\n")},
		{Name: "audio/se/Bell.mp3", Data: []byte("bell")},
	})
	// not mounted, pak2 is missing
	writePak(t, filepath.Join(dir, "pak3.pak"), []pack.File{
		{Name: "doc2.txt", Data: []byte("unreachable")},
	})
	writeLoose(t, dir, "doc5.txt", "good file5\n")
	writeLoose(t, dir, "audio/bgs/Drips.ogg", "loose drips")
	writeLoose(t, dir, "audio/bgm/Theme.v2.mp3", "theme")
	if err := UseBaseDir(dir); err != nil {
		t.Fatalf("UseBaseDir: %v", err)
	}
	t.Cleanup(Close)
	return dir
}

func readAll(t *testing.T, name string) string {
	t.Helper()
	b, err := ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	return string(b)
}

func TestFilesystemOrder(t *testing.T) {
	setup(t)
	if got := readAll(t, "doc1.txt"); got != "this is the first doc 2. version\r\n" {
		t.Errorf("contents: %v", got)
	}
	if got := readAll(t, "doc2.txt"); got != "this is the second doc" {
		t.Errorf("contents: %v", got)
	}
	if got := readAll(t, "/doc5.txt"); got != "good file5\n" {
		t.Errorf("contents: %v", got)
	}
	if len(Paks()) != 2 {
		t.Errorf("Paks = %v want 2 paks", Paks())
	}
	if Exists("doc3.txt") {
		t.Errorf("doc3.txt exists")
	}
}

func TestResolveAudio(t *testing.T) {
	setup(t)
	tests := []struct {
		name string
		ext  string
		data string
	}{
		// .ogg is probed first and the loose file wins
		{"bgs/Drips", ".ogg", "loose drips"},
		{"bgs/Drips.wav", ".wav", "old drips"},
		{"se/Bell", ".mp3", "bell"},
		// a dot in the name is no extension
		{"bgm/Theme.v2", ".mp3", "theme"},
		{"bgm/Theme.v2.mp3", ".mp3", "theme"},
	}
	for _, tc := range tests {
		f, ext, err := ResolveAudio(tc.name)
		if err != nil {
			t.Errorf("ResolveAudio(%s): %v", tc.name, err)
			continue
		}
		b, _ := io.ReadAll(f)
		f.Close()
		if ext != tc.ext || string(b) != tc.data {
			t.Errorf("ResolveAudio(%s) = %q,%q want %q,%q", tc.name, ext, b, tc.ext, tc.data)
		}
	}
	if _, _, err := ResolveAudio("me/Fanfare"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveAudio(missing) = %v", err)
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		in, ext, stripped string
	}{
		{"audio/bgs/Drips.ogg", ".ogg", "audio/bgs/Drips"},
		{"audio/bgs/Drips", "", "audio/bgs/Drips"},
		{"a.b/c", "", "a.b/c"},
		{`a.b\c.wav`, ".wav", `a.b\c`},
	}
	for _, tc := range tests {
		if got := Ext(tc.in); got != tc.ext {
			t.Errorf("Ext(%v) = %v want %v", tc.in, got, tc.ext)
		}
		if got := StripExt(tc.in); got != tc.stripped {
			t.Errorf("StripExt(%v) = %v want %v", tc.in, got, tc.stripped)
		}
	}
}
