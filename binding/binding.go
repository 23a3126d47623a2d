// Package binding compiles and evaluates the @{...} expressions embedded
// in layout attribute values. A binding is either a data path, read and
// written against a JSON-like node tree, or a call of a registered
// function whose arguments are themselves compiled expressions.
package binding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loomui/go-loom/ir"
)

// Binding is a compiled @{...} expression. Both binding kinds evaluate
// through the same entry point; evaluation never fails, it degrades to a
// null node.
type Binding = ir.Evaluable

var ErrSyntax = errors.New("not a binding expression")

const (
	bindingPrefix = "@{"
	bindingSuffix = '}'
	callPrefix    = "fn:"
)

// IsBindingSyntax reports whether s has the outer shape of a binding:
// at least 4 characters, starting with "@{" and ending with "}". Anything
// else is a plain literal.
func IsBindingSyntax(s string) bool {
	return len(s) >= 4 && strings.HasPrefix(s, bindingPrefix) && s[len(s)-1] == byte(bindingSuffix)
}

// Compile turns a binding string into its compiled form, routing function
// call syntax to the call compiler and everything else to the path
// compiler. The inner text must be non-empty after trimming: a compiled
// path always has at least one token. Compiled bindings are cached by
// source text in env, so compiling the same string twice returns the same
// instance.
func Compile(s string, env *Env) (Binding, error) {
	if !IsBindingSyntax(s) {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	inner := s[2 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, fmt.Errorf("%w: empty expression %q", ErrSyntax, s)
	}
	return compileInner(inner, env), nil
}

func compileInner(src string, env *Env) Binding {
	if name, args, ok := splitCall(src); ok {
		return CompileCall(name, args, env)
	}
	return CompilePath(src, env)
}

// splitCall scans for the fn:<name>(<args>) shape. A hand-written check
// rather than a regex: the grammar is a fixed prefix, a name up to the
// first '(' and a ')' at the very end.
func splitCall(src string) (name, args string, ok bool) {
	if !strings.HasPrefix(src, callPrefix) {
		return "", "", false
	}
	open := strings.IndexByte(src, '(')
	if open == -1 || src[len(src)-1] != ')' || open+1 > len(src)-1 {
		return "", "", false
	}
	name = strings.TrimSpace(src[len(callPrefix):open])
	if name == "" {
		return "", "", false
	}
	return name, src[open+1 : len(src)-1], true
}
