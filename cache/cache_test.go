package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/loomui/go-loom/ir"
)

type fakeBinding struct {
	src string
}

func (f *fakeBinding) Evaluate(_ ir.Env, _ *ir.Node, _ int) *ir.Node {
	return ir.FromString(f.src)
}

func (f *fakeBinding) String() string {
	return f.src
}

func TestGetSet(t *testing.T) {
	c := New(8)
	if _, ok := c.Get("a"); ok {
		t.Errorf("hit on empty cache")
	}
	b := &fakeBinding{src: "a"}
	if got := c.Set("a", b); got != b {
		t.Errorf("Set returned a different instance")
	}
	got, ok := c.Get("a")
	if !ok || got != b {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}
}

func TestSetFirstInsertWins(t *testing.T) {
	c := New(8)
	first := &fakeBinding{src: "x"}
	second := &fakeBinding{src: "x"}
	c.Set("x", first)
	if got := c.Set("x", second); got != first {
		t.Errorf("second Set displaced the first instance")
	}
	got, _ := c.Get("x")
	if got != first {
		t.Errorf("Get returned the displaced instance")
	}
}

func TestGetOrCompile(t *testing.T) {
	c := New(8)
	calls := 0
	compile := func() (ir.Evaluable, error) {
		calls++
		return &fakeBinding{src: "k"}, nil
	}
	a, err := c.GetOrCompile("k", compile)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.GetOrCompile("k", compile)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("recompilation returned a distinct instance")
	}
	if calls != 1 {
		t.Errorf("compile ran %d times", calls)
	}
}

func TestGetOrCompileError(t *testing.T) {
	c := New(8)
	wantErr := errors.New("no")
	_, err := c.GetOrCompile("k", func() (ir.Evaluable, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed compile was cached")
	}
}

func TestEvictionIsLRU(t *testing.T) {
	c := New(2)
	c.Set("a", &fakeBinding{src: "a"})
	c.Set("b", &fakeBinding{src: "b"})
	// touch a so b is the eviction candidate
	c.Get("a")
	c.Set("c", &fakeBinding{src: "c"})
	if _, ok := c.Get("b"); ok {
		t.Errorf("b survived eviction")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
}

func TestClear(t *testing.T) {
	c := New(8)
	c.Set("a", &fakeBinding{src: "a"})
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len = %d after Clear", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Errorf("hit after Clear")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%32)
				b, err := c.GetOrCompile(key, func() (ir.Evaluable, error) {
					return &fakeBinding{src: key}, nil
				})
				if err != nil {
					t.Error(err)
					return
				}
				if b.String() != key {
					t.Errorf("got %q for %q", b.String(), key)
					return
				}
			}
		}()
	}
	wg.Wait()
}
