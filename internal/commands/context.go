// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sync"
	"time"

	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
)

// =============================================================================
// CONTROL SURFACE
// =============================================================================

// Control exposes the few terminal operations commands may trigger
// (clearing the log, quitting). Implemented by the TUI and the REPL;
// all methods must be safe to call from the dispatch goroutine.
type Control interface {
	// ClearLog wipes the output log.
	ClearLog()
	// SetTheme restyles the host with the named theme.
	SetTheme(name string)
	// Quit asks the host program to exit after the current chain.
	Quit()
}

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Context is the shared state handlers execute against. It follows the
// dependency injection pattern: handlers reach the environment store,
// history, and terminal controls through the context rather than
// through globals.
//
// All fields may be nil in tests; handlers check before use.
type Context struct {
	// Env is the shell-like environment variable store.
	Env *env.Store

	// History is the persistent command history.
	History *history.Manager

	// Control reaches back into the hosting terminal surface.
	Control Control

	// Registry is the merged command table, wired in after construction
	// so help and completion can enumerate it.
	Registry *Registry

	// Version is the program version shown by system commands.
	Version string

	// StartTime anchors the faked uptime counters.
	StartTime time.Time

	// FS is the virtual filesystem the filesystem group walks.
	FS *VFS

	mu  sync.Mutex
	cwd string

	// Session toggles mutated by the audio/effects groups. They only
	// change what the status commands report; there is no real audio
	// or particle subsystem behind them.
	muted     bool
	volume    int
	particles bool
	glass     bool
	theme     string
}

// NewContext creates a handler context with the given collaborators.
func NewContext(envStore *env.Store, hist *history.Manager, ctrl Control, version string) *Context {
	fs := NewVFS()
	return &Context{
		Env:       envStore,
		History:   hist,
		Control:   ctrl,
		Version:   version,
		StartTime: time.Now(),
		FS:        fs,
		cwd:       fs.Home(),
		volume:    70,
		particles: true,
		glass:     true,
		theme:     "dark",
	}
}

// Cwd returns the virtual working directory.
func (c *Context) Cwd() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cwd
}

// SetCwd records a new virtual working directory. The engine mirrors it
// into the environment's PWD after the chain completes.
func (c *Context) SetCwd(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cwd = path
}

// ApplySessionDefaults seeds the session toggles from configuration.
// Called once during startup, before any command runs.
func (c *Context) ApplySessionDefaults(volume int, muted, particles, glass bool) {
	c.setVolume(volume)
	c.mu.Lock()
	c.muted = muted
	c.particles = particles
	c.glass = glass
	c.mu.Unlock()
}

// SetThemeName records the active theme name for status commands.
// Called during startup and by the theme command; restyling the host
// itself goes through Control.
func (c *Context) SetThemeName(name string) {
	c.mu.Lock()
	c.theme = name
	c.mu.Unlock()
}

// ThemeName returns the active theme name.
func (c *Context) ThemeName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Uptime returns how long the session has been running.
func (c *Context) Uptime() time.Duration {
	return time.Since(c.StartTime)
}

// setVolume clamps and stores the faked mixer volume.
func (c *Context) setVolume(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	c.mu.Lock()
	c.volume = v
	c.mu.Unlock()
}

func (c *Context) getVolume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

func (c *Context) setMuted(m bool) {
	c.mu.Lock()
	c.muted = m
	c.mu.Unlock()
}

func (c *Context) isMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

func (c *Context) toggleParticles() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.particles = !c.particles
	return c.particles
}

func (c *Context) toggleGlass() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.glass = !c.glass
	return c.glass
}

func (c *Context) effectsState() (particles, glass bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.particles, c.glass
}
