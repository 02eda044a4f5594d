// Package format renders brace-placeholder message templates for the
// diagnostic emitter.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// NamedArg binds a value to a placeholder name.
type NamedArg struct {
	Name  string
	Value any
}

// Named returns a NamedArg for use in a format argument list.
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// Append renders template into dst and returns the extended slice.
//
// "{}" consumes the next positional argument, "{N}" addresses the N-th
// positional argument, and "{name}" resolves the NamedArg registered under
// that name, independent of where it sits in args. "{{" and "}}" are literal
// braces. Positional and named arguments may be mixed in one call.
//
// Rendering never fails: a placeholder with no matching argument comes out as
// its literal text and surplus arguments are ignored.
func Append(dst []byte, template string, args ...any) []byte {
	var positional []any
	var named map[string]any
	for _, a := range args {
		if na, ok := a.(NamedArg); ok {
			if named == nil {
				named = make(map[string]any)
			}
			named[na.Name] = na.Value
			continue
		}
		positional = append(positional, a)
	}

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				dst = append(dst, '{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				// Unterminated placeholder; emit the rest verbatim.
				return append(dst, template[i:]...)
			}
			spec := template[i+1 : i+1+end]
			if value, ok := resolve(spec, positional, named, &next); ok {
				dst = fmt.Append(dst, value)
			} else {
				dst = append(dst, template[i:i+end+2]...)
			}
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			dst = append(dst, '}')
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// Format is Append into a fresh string.
func Format(template string, args ...any) string {
	return string(Append(nil, template, args...))
}

func resolve(spec string, positional []any, named map[string]any, next *int) (any, bool) {
	if spec == "" {
		if *next >= len(positional) {
			return nil, false
		}
		v := positional[*next]
		*next++
		return v, true
	}
	if idx, err := strconv.Atoi(spec); err == nil && idx >= 0 {
		if idx >= len(positional) {
			return nil, false
		}
		return positional[idx], true
	}
	v, ok := named[spec]
	return v, ok
}
