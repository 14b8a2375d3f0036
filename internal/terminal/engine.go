// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/neuos/neuos-tui/internal/commands"
	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
	"github.com/neuos/neuos-tui/internal/util"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultQueueLimit bounds the pending submission queue. Lines
	// arriving past the limit are dropped with a notice.
	DefaultQueueLimit = 64

	// DefaultRateLimit is the sustained submissions-per-second budget.
	// Generous for a human, tight enough to stop paste floods.
	DefaultRateLimit = rate.Limit(20)

	// DefaultRateBurst allows short bursts above the sustained rate.
	DefaultRateBurst = 40
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine dispatches submitted command lines. Execution is
// single-flight: one chain runs at a time and lines submitted while a
// chain is in flight queue up in FIFO order.
type Engine struct {
	registry  *commands.Registry
	ctx       *commands.Context
	env       *env.Store
	history   *history.Manager
	formatter *Formatter
	surface   Surface
	limiter   *rate.Limiter

	mu         sync.Mutex
	processing bool
	queue      []string
	queueLimit int
}

// Options configures a new engine. Zero values pick defaults; a nil
// Surface falls back to a discard sink until Attach is called.
type Options struct {
	Registry  *commands.Registry
	Context   *commands.Context
	Env       *env.Store
	History   *history.Manager
	Formatter *Formatter
	Surface   Surface

	// QueueLimit caps pending submissions. Zero means
	// DefaultQueueLimit; negative disables queueing entirely.
	QueueLimit int

	// DisableRateLimit turns off the submission limiter. Used by the
	// line-mode REPL where input is already serialized.
	DisableRateLimit bool
}

// NewEngine wires an engine from its parts.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		registry:   opts.Registry,
		ctx:        opts.Context,
		env:        opts.Env,
		history:    opts.History,
		formatter:  opts.Formatter,
		surface:    opts.Surface,
		queueLimit: opts.QueueLimit,
	}
	if e.formatter == nil {
		e.formatter = NewFormatter(80)
	}
	if e.surface == nil {
		e.surface = nopSurface{}
	}
	if e.queueLimit == 0 {
		e.queueLimit = DefaultQueueLimit
	}
	if !opts.DisableRateLimit {
		e.limiter = rate.NewLimiter(DefaultRateLimit, DefaultRateBurst)
	}
	return e
}

// Attach replaces the display surface. Called once the UI is up.
func (e *Engine) Attach(s Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil {
		s = nopSurface{}
	}
	e.surface = s
}

// Formatter exposes the engine's formatter so the UI can resize it.
func (e *Engine) Formatter() *Formatter {
	return e.formatter
}

// Pending reports how many submissions are queued behind the running
// chain.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit hands a raw input line to the engine. Blank lines clear the
// input and do nothing else. If a chain is already running the line is
// queued; queued lines run in submission order once the current chain
// finishes. Submit runs the chain on the caller's goroutine.
func (e *Engine) Submit(raw string) {
	if strings.TrimSpace(raw) == "" {
		e.surface.ClearInput()
		return
	}

	if e.limiter != nil && !e.limiter.Allow() {
		e.appendEntry(newEntry(EntryNotice, "input rate limit exceeded, line dropped"))
		return
	}

	e.mu.Lock()
	if e.processing {
		if len(e.queue) >= e.queueLimit {
			e.mu.Unlock()
			log.Printf("terminal: queue full, dropping %q", util.TruncateRunes(raw, 80))
			e.appendEntry(newEntry(EntryNotice, "queue full, line dropped"))
			return
		}
		e.queue = append(e.queue, raw)
		e.mu.Unlock()
		e.surface.ClearInput()
		return
	}
	e.processing = true
	e.mu.Unlock()

	// Drain loop. Lines queued while this chain runs are picked up
	// here rather than recursing through Submit.
	line := raw
	for {
		e.runChain(line)

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.processing = false
			e.mu.Unlock()
			return
		}
		line = e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
	}
}

// =============================================================================
// CHAIN EXECUTION
// =============================================================================

// runChain records the line in history, echoes it with its prompt, and
// executes its segments under the && / || short-circuit policy.
func (e *Engine) runChain(raw string) {
	if e.history != nil {
		e.history.Record(raw)
	}
	e.appendEntry(newEntry(EntryCommand, e.prompt()+strings.TrimSpace(raw)))
	e.surface.ClearInput()

	segments := commands.ParseChain(raw)
	lastFailed := false

	for i, seg := range segments {
		if i > 0 {
			// The operator trailing the previous segment gates this one.
			switch segments[i-1].Op {
			case commands.OpAnd:
				if lastFailed {
					e.finishChain()
					return
				}
			case commands.OpOr:
				if !lastFailed {
					e.finishChain()
					return
				}
			}
		}

		name, args := commands.Tokenize(seg.Text)
		if name == "" {
			// Sanitizing stripped the entire name (e.g. "!!!"). The
			// segment is just as unresolvable as an unknown command.
			e.appendEntry(newEntry(EntryError, fmt.Sprintf("command not found: %s", strings.Fields(seg.Text)[0])))
			e.finishChain()
			return
		}

		cmd := e.registry.Resolve(name)
		if cmd == nil {
			// Resolution failure aborts the whole chain.
			e.appendEntry(newEntry(EntryError, fmt.Sprintf("command not found: %s", name)))
			e.finishChain()
			return
		}

		res, err := invoke(cmd, e.ctx, args)
		if err != nil {
			// A handler error (as opposed to a failed result) also
			// aborts the remainder of the chain.
			e.appendEntry(newEntry(EntryError, fmt.Sprintf("%s: %v", cmd.Name, err)))
			e.finishChain()
			return
		}

		lastFailed = res.Failed()
		e.emit(res, cmd.Name)
	}

	e.finishChain()
}

// finishChain syncs derived environment state after a chain ends, in
// either success or abort.
func (e *Engine) finishChain() {
	if e.env != nil && e.ctx != nil {
		e.env.RefreshPWD(e.ctx.Cwd())
	}
}

// invoke runs a handler with panic containment. A panicking command
// surfaces as an error instead of taking the whole terminal down.
func invoke(cmd *commands.Command, ctx *commands.Context, args []string) (res commands.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("terminal: command %q panicked: %v", cmd.Name, r)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return cmd.Handler(ctx, args)
}

// emit renders a result and appends it, skipping entries with no
// visible body (clear, cd, and friends return nothing).
func (e *Engine) emit(res commands.Result, name string) {
	entry := e.formatter.Render(res, name)
	if entry.Body == "" && entry.Kind == EntryOutput {
		return
	}
	e.appendEntry(entry)
}

func (e *Engine) appendEntry(entry Entry) {
	e.surface.AppendEntry(entry)
	e.surface.TrimLog()
	if entry.ScrollTop {
		e.surface.ScrollToTop()
	} else if e.formatter.AutoScroll() {
		e.surface.ScrollToBottom()
	}
}

// prompt builds the shell-style prefix echoed before each command.
func (e *Engine) prompt() string {
	user := "guest"
	host := "neuos"
	cwd := "~"
	if e.env != nil {
		if v, ok := e.env.Get("USER"); ok {
			user = v
		}
	}
	if e.ctx != nil && e.env != nil {
		cwd = e.ctx.Cwd()
		if home, ok := e.env.Get("HOME"); ok && home != "" {
			if cwd == home {
				cwd = "~"
			} else if strings.HasPrefix(cwd, home+"/") {
				cwd = "~" + strings.TrimPrefix(cwd, home)
			}
		}
	}
	return fmt.Sprintf("%s@%s:%s$ ", user, host, cwd)
}
