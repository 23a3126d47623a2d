// Package fn holds the registry of named functions callable from binding
// expressions, together with the builtin function set.
package fn

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/loomui/go-loom/ir"
)

var ErrFuncExists = errors.New("function exists")

// Noop is the fallback for unknown function names. It returns null and has
// no side effects, so function references never need a nil check.
var Noop = &ir.Func{
	Name: "noop",
	Call: func(_ ir.Env, _ *ir.Node, _ int, _ []*ir.Node) (*ir.Node, error) {
		return ir.Null(), nil
	},
}

// Registry maps function names to implementations. It is safe for
// concurrent use and read-only at evaluation time by convention.
type Registry struct {
	mu sync.RWMutex
	d  map[string]*ir.Func
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]*ir.Func{}}
}

func (r *Registry) Register(f *ir.Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, present := r.d[f.Name]
	if present {
		return fmt.Errorf("%s: %w", f.Name, ErrFuncExists)
	}
	r.d[f.Name] = f
	return nil
}

// Func looks up a function by name, falling back to Noop for unknown
// names. It never returns nil, implementing ir.Env.
func (r *Registry) Func(name string) *ir.Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f := r.d[name]
	if f == nil {
		return Noop
	}
	return f
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, present := r.d[name]
	return present
}

func (r *Registry) Funcs() []*ir.Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*ir.Func, 0, len(r.d))
	for _, f := range r.d {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry populated with the builtins.
func Default() *Registry {
	return defaultRegistry
}

func init() {
	for _, f := range []*ir.Func{
		Concat(),
		Join(),
		Upper(),
		Lower(),
		Trim(),
		Substr(),
		Len(),
		Add(),
		Sub(),
		Mul(),
		Div(),
		Mod(),
		Min(),
		Max(),
		Number(),
		Eq(),
		Lt(),
		Gt(),
		Not(),
		And(),
		Or(),
		Ternary(),
		Date(),
		Expr(),
	} {
		if err := defaultRegistry.Register(f); err != nil {
			panic(err)
		}
	}
}
