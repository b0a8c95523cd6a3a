/*
 * Copyright (c) 2016 Dan Kortschak <dan.kortschak@adelaide.edu.au>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package dbg

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// timeLayout renders timestamps in the header as <dd.mm.yy HH:MM:SS>.
const timeLayout = "02.01.06 15:04:05"

// Location identifies the call site of a debug invocation.
type Location struct {
	File string
	Line int
	Func string
}

// Here returns the Location skip frames above the caller of Here; pass 0
// for the caller itself.
func Here(skip int) Location {
	return callerLocation(skip + 1)
}

func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???", Func: "???"}
	}
	name := "???"
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
	}
	return Location{File: filepath.Base(file), Line: line, Func: name}
}

// Session owns a debug output sink for the life of the process.  All
// invocations through one Session share its sink and options; the mutex
// keeps concurrent invocations from interleaving their blocks.
type Session struct {
	mu        sync.Mutex
	w         io.Writer
	cs        *ConfigState
	log       zerolog.Logger
	now       func() time.Time
	enabled   bool
	wasCalled bool
}

// Option configures a Session at construction.
type Option func(*Session)

// WithConfig sets the rendering options.
func WithConfig(cs *ConfigState) Option {
	return func(s *Session) { s.cs = cs }
}

// WithLogger sets the logger used for the Session's own diagnostics, such
// as sink flush failures.  Diagnostics are discarded by default.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithClock sets the time source used for header timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New returns an enabled Session writing to w with the package Config.
func New(w io.Writer, opts ...Option) *Session {
	s := &Session{
		w:       w,
		cs:      &Config,
		log:     zerolog.Nop(),
		now:     time.Now,
		enabled: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Enable turns invocations back on after Disable.
func (s *Session) Enable() {
	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
}

// Disable makes invocations no-ops until Enable.
func (s *Session) Disable() {
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()
}

// Dbg writes one invocation block: a [file:line (func) time] header for
// the caller, then one "name: Type = value" line per value, with names
// recovered from the raw argument text.  Write the raw text the way the
// values are spelled at the call site:
//
//	dbg.Dbg("n, n*n, (Sum(a, b))", n, n*n, Sum(a, b))
func (s *Session) Dbg(raw string, values ...interface{}) error {
	return s.dbg(callerLocation(1), raw, nil, values)
}

// DbgAt is Dbg with an explicit call-site location.
func (s *Session) DbgAt(loc Location, raw string, values ...interface{}) error {
	return s.dbg(loc, raw, nil, values)
}

// DbgNames is DbgAt with pre-split display names, for front ends that
// already hold a name per value.
func (s *Session) DbgNames(loc Location, names []string, values ...interface{}) error {
	return s.dbg(loc, "", names, values)
}

func (s *Session) dbg(loc Location, raw string, names []string, values []interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return nil
	}

	d := &dumpState{w: s.w, cs: s.cs, pointers: make(map[uintptr]int)}
	if s.wasCalled {
		d.write("\n")
	}
	s.wasCalled = true
	d.write("[" + loc.File + ":" + strconv.Itoa(loc.Line) + " (" + loc.Func + ") " +
		s.now().Format(timeLayout) + "]\n")

	var err error
	if names != nil {
		err = d.multiplex(names, values)
	} else {
		err = d.multiplexRaw(raw, values)
	}
	s.flush()
	if err != nil {
		s.log.Debug().Err(err).Str("file", loc.File).Int("line", loc.Line).
			Msg("invocation failed")
		return err
	}
	if d.depth != 0 {
		return ErrUnbalancedIndent
	}
	return d.err
}

// flush pushes buffered output to its destination after each invocation
// so blocks survive a crash of the program under inspection.
func (s *Session) flush() {
	type syncer interface{ Sync() error }
	type flusher interface{ Flush() error }
	var err error
	switch w := s.w.(type) {
	case syncer:
		err = w.Sync()
	case flusher:
		err = w.Flush()
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("sink flush failed")
	}
}

// std is the default Session, writing to standard error.
var std = New(os.Stderr)

// Dbg writes one invocation block through the default Session.  See
// Session.Dbg for the raw argument text convention.
func Dbg(raw string, values ...interface{}) error {
	return std.dbg(callerLocation(1), raw, nil, values)
}

// Enable turns the default Session back on after Disable.
func Enable() { std.Enable() }

// Disable makes default-Session invocations no-ops until Enable.
func Disable() { std.Disable() }

// SetDefault replaces the default Session used by the top-level Dbg,
// choosing the process-wide sink once at initialization.
func SetDefault(s *Session) {
	if s != nil {
		std = s
	}
}
