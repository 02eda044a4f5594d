// Package diag emits program-name-prefixed diagnostic messages to the
// diagnostic stream, conventionally standard error.
//
// Each message is composed fully in memory and written in a single Write
// call, so one diagnostic line appears as one contiguous unit relative to
// other well-behaved writers on the same stream. The program-name prefix is
// read from the progname store at emission time. Warn and Warnp return to
// the caller; Err and Errp terminate the process after writing.
//
// Format strings use brace placeholders: "{}" for the next positional
// argument, "{name}" for an argument supplied via Named. See internal/format
// for the full rules.
package diag

import (
	"fmt"
	"io"
	"os"

	msgfmt "github.com/clidiag/clidiag/internal/format"
	"github.com/clidiag/clidiag/progname"
)

// NamedArg binds a value to a format placeholder name.
type NamedArg = msgfmt.NamedArg

// Named returns an argument resolved by placeholder name instead of
// position. Argument order does not matter for named placeholders.
func Named(name string, value any) NamedArg {
	return msgfmt.Named(name, value)
}

// Emitter composes one diagnostic line per call and writes it to Out in a
// single Write. Zero-value fields fall back to process defaults: the zero
// Emitter writes to os.Stderr, terminates via os.Exit, and reads the
// process-wide program name.
type Emitter struct {
	// Out is the diagnostic stream. Nil means os.Stderr.
	Out io.Writer
	// Exit terminates the process on the fatal paths. Nil means os.Exit.
	// Tests may inject a recorder here; Err and Errp assume the function
	// does not return.
	Exit func(status int)
	// Names supplies the program-name prefix. Nil means progname.Default().
	Names *progname.Store
}

// Warn writes "<name>: <text>\n" to the diagnostic stream.
func (e *Emitter) Warn(format string, args ...any) {
	e.emit("", false, format, args)
}

// Warnp writes "<name>: <path>: <text>\n" to the diagnostic stream.
func (e *Emitter) Warnp(path string, format string, args ...any) {
	e.emit(path, true, format, args)
}

// Err writes the same bytes as Warn and then terminates the process with
// status. It does not return.
func (e *Emitter) Err(status int, format string, args ...any) {
	e.emit("", false, format, args)
	e.exit(status)
}

// Errp writes the same bytes as Warnp and then terminates the process with
// status. It does not return.
func (e *Emitter) Errp(status int, path string, format string, args ...any) {
	e.emit(path, true, format, args)
	e.exit(status)
}

// emit builds [name]": "[path": "]text"\n" and writes it in one call.
// Composition cannot fail; a failed write aborts the process, because the
// diagnostic stream is the last line of defense and losing it leaves no safe
// way to report anything.
func (e *Emitter) emit(path string, withPath bool, format string, args []any) {
	buf := make([]byte, 0, 128)
	buf = append(buf, e.names().Get().String()...)
	buf = append(buf, ": "...)
	if withPath {
		buf = append(buf, path...)
		buf = append(buf, ": "...)
	}
	msgStart := len(buf)
	buf = msgfmt.Append(buf, format, args...)
	buf = append(buf, '\n')

	if _, err := e.out().Write(buf); err != nil {
		panic(fmt.Sprintf("diag: write to diagnostic stream failed: %v: %s",
			err, buf[msgStart:len(buf)-1]))
	}
}

func (e *Emitter) out() io.Writer {
	if e.Out != nil {
		return e.Out
	}
	return os.Stderr
}

func (e *Emitter) exit(status int) {
	if e.Exit != nil {
		e.Exit(status)
		return
	}
	os.Exit(status)
}

func (e *Emitter) names() *progname.Store {
	if e.Names != nil {
		return e.Names
	}
	return progname.Default()
}

// std is the process-default emitter behind the package-level functions.
var std Emitter

// Warn writes "<name>: <text>\n" to standard error.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Warnp writes "<name>: <path>: <text>\n" to standard error.
func Warnp(path string, format string, args ...any) {
	std.Warnp(path, format, args...)
}

// Err writes the same bytes as Warn to standard error and then terminates
// the process with status. It does not return.
func Err(status int, format string, args ...any) {
	std.Err(status, format, args...)
}

// Errp writes the same bytes as Warnp to standard error and then terminates
// the process with status. It does not return.
func Errp(status int, path string, format string, args ...any) {
	std.Errp(status, path, format, args...)
}
