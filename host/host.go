// SPDX-License-Identifier: GPL-2.0-or-later

// Package host ties the command system, the world, the sound engine and
// the terminal together.
package host

import (
	"bufio"
	"os"

	"emittance/alias"
	"emittance/cbuf"
	"emittance/cmd"
	"emittance/conlog"
	"emittance/cvar"
	"emittance/keys"
	"emittance/level"
	"emittance/snd"
	"emittance/world"

	"github.com/pkg/errors"
)

const (
	// nearestRange limits toggle_nearest, in tiles.
	nearestRange = 12
	// maxConfigFrames bounds the frames a config file may wait.
	maxConfigFrames = 64
)

// Host owns one game session.
type Host struct {
	commands *cmd.Commands
	cbuf     cbuf.CommandBuffer
	aliases  *alias.Aliases
	binds    *keys.Bindings
	console  Console
	read     func(string) ([]byte, error)

	scene  *world.Scene
	engine *snd.Engine
	loader *level.Loader

	dest     keys.Destination
	selected *world.Event
	quit     bool
	// focus runs when the terminal gains or loses focus.
	focus func(bool)
}

// New creates a host reading scripts and configs with read. The world
// does not exist until StartWorld.
func New(read func(string) ([]byte, error)) (*Host, error) {
	h := &Host{
		commands: cmd.New(),
		aliases:  alias.New(),
		binds:    keys.New(),
		read:     read,
		focus:    suspendAudio,
	}
	h.binds.SetDefaults()
	if err := h.aliases.Register(h.commands); err != nil {
		return nil, err
	}
	if err := h.binds.Register(h.commands); err != nil {
		return nil, err
	}
	if err := h.addCommands(); err != nil {
		return nil, err
	}
	h.cbuf.SetCommandExecutors([]cbuf.Efunc{
		cbuf.Commands(h.commands),
		globalCommands,
		cbuf.Exec(read),
		h.aliases.Execute(),
		func(_ *cbuf.CommandBuffer, a cmd.Arguments, caller int) (bool, error) {
			return cvar.Execute(a, caller)
		},
	})
	return h, nil
}

// globalCommands runs the commands packages register at init, like the
// cvar commands.
func globalCommands(_ *cbuf.CommandBuffer, a cmd.Arguments, caller int) (bool, error) {
	return cmd.Execute(a, caller)
}

// AddText queues console text.
func (h *Host) AddText(text string) {
	h.cbuf.AddText(text)
}

// Console returns the console receiving conlog output once
// UseConsole was called.
func (h *Host) Console() *Console {
	return &h.console
}

// UseConsole routes conlog into the host console.
func (h *Host) UseConsole() {
	conlog.SetPrintf(h.console.Printf)
	conlog.SetSafePrintf(h.console.Printf)
}

// Configure runs the config files and then the given lines until the
// buffer is empty. The world commands are not available yet, only cvars,
// binds and aliases.
func (h *Host) Configure(files []string, lines []string) {
	for _, f := range files {
		h.cbuf.AddText("exec " + f + "\n")
	}
	for _, l := range lines {
		h.cbuf.AddText(l + "\n")
	}
	h.flush()
}

func (h *Host) flush() {
	for i := 0; i < maxConfigFrames && h.cbuf.Pending() > 0; i++ {
		h.execute()
	}
}

func (h *Host) execute() {
	if err := h.cbuf.Execute(); err != nil {
		conlog.Printf("%v\n", err)
	}
}

// WriteConfig saves the bindings and the archived cvars to name.
func (h *Host) WriteConfig(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "write config")
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString("// written on exit, put own settings into emittance.cfg\n")
	if err := h.binds.Write(w); err != nil {
		return err
	}
	if err := cvar.WriteArchived(w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write config")
}

// StartWorld creates the scene and the sound engine on top of b. The
// sound configuration is read from the cvars at this point.
func (h *Host) StartWorld(b snd.Backend) error {
	if h.scene != nil {
		return errors.New("world already started")
	}
	reg := snd.NewRegistry(b)
	h.scene = world.NewScene(reg)
	h.engine = snd.NewEngine(snd.ConfigFromCvars(), reg)
	h.engine.Subscribe(h.scene, h.scene.Player)
	if err := world.RegisterCommands(h.commands.Add, h.scene); err != nil {
		return err
	}
	if err := h.addWorldCommands(); err != nil {
		return err
	}
	h.loader = level.NewLoader(h.scene, h.read, func(l string) {
		h.cbuf.AddText(l + "\n")
	})
	return nil
}

func (h *Host) Scene() *world.Scene {
	return h.scene
}

func (h *Host) Engine() *snd.Engine {
	return h.engine
}

// LoadLevel replaces the current level with the script name.
func (h *Host) LoadLevel(name string) error {
	if h.loader == nil {
		return errors.New("world not started")
	}
	h.selected = nil
	return h.loader.Load(name)
}

// Frame executes pending commands and advances the world one frame.
func (h *Host) Frame() {
	h.execute()
	if h.scene != nil {
		h.scene.Update()
	}
}

// Quit reports whether the quit command ran.
func (h *Host) Quit() bool {
	return h.quit
}

// Shutdown releases all voices.
func (h *Host) Shutdown() {
	if h.engine != nil {
		h.engine.Registry().Flush()
	}
}
