package binding

import (
	"github.com/loomui/go-loom/cache"
	"github.com/loomui/go-loom/fn"
	"github.com/loomui/go-loom/ir"
)

// Env owns what compilation needs: the function registry and the caches of
// compiled paths and calls. Whoever constructs the engine owns the Env and
// its cache lifecycle; there is no hidden global state beyond the default
// function registry.
type Env struct {
	Funcs *fn.Registry
	Paths *cache.Cache
	Calls *cache.Cache
}

// NewEnv returns an Env over the default function registry with fresh
// caches.
func NewEnv() *Env {
	return &Env{
		Funcs: fn.Default(),
		Paths: cache.New(0),
		Calls: cache.New(0),
	}
}

// Func implements ir.Env; unknown names resolve to the no-op function.
func (e *Env) Func(name string) *ir.Func {
	return e.Funcs.Func(name)
}

// Clear drops all compiled bindings, for deterministic test state.
func (e *Env) Clear() {
	e.Paths.Clear()
	e.Calls.Clear()
}
