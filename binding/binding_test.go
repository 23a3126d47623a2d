package binding

import (
	"errors"
	"testing"

	"github.com/loomui/go-loom/ir"
)

func TestIsBindingSyntax(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"@{a}", true},
		{"@{user.name}", true},
		{"@{fn:concat('a', b)}", true},
		{"@{}", false},
		{"@{a", false},
		{"a}", false},
		{"user.name", false},
		{"", false},
		{"@{ }", true},
	}
	for _, tt := range tests {
		if got := IsBindingSyntax(tt.s); got != tt.want {
			t.Errorf("IsBindingSyntax(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestCompileRejectsNonBinding(t *testing.T) {
	env := NewEnv()
	for _, s := range []string{"user.name", "@{ }", "@{   }"} {
		if _, err := Compile(s, env); !errors.Is(err, ErrSyntax) {
			t.Errorf("Compile(%q) err = %v, want ErrSyntax", s, err)
		}
	}
}

func TestCompileRoutes(t *testing.T) {
	env := NewEnv()
	b, err := Compile("@{user.name}", env)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*PathBinding); !ok {
		t.Errorf("path source compiled to %T", b)
	}
	b, err = Compile("@{fn:upper(user.name)}", env)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*FuncBinding); !ok {
		t.Errorf("call source compiled to %T", b)
	}
}

func TestCompileCachesByText(t *testing.T) {
	env := NewEnv()
	a, err := Compile("@{user.name}", env)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile("@{user.name}", env)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("recompilation returned a distinct instance")
	}
	c, err := Compile("@{fn:upper(x)}", env)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Compile("@{fn:upper(x)}", env)
	if err != nil {
		t.Fatal(err)
	}
	if c != d {
		t.Errorf("call recompilation returned a distinct instance")
	}
	env.Clear()
	e, err := Compile("@{user.name}", env)
	if err != nil {
		t.Fatal(err)
	}
	if e == a {
		t.Errorf("Clear kept compiled instances")
	}
}

func TestBindingString(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		src  string
		want string
	}{
		{"@{user.name}", "@{user.name}"},
		{"@{ user . name }", "@{user.name}"},
		{"@{items[0].id}", "@{items.0.id}"},
		{"@{fn:concat('Hi ', user.name)}", "@{fn:concat('Hi ', user.name)}"},
		{"@{fn:upper(fn:trim(name))}", "@{fn:upper(fn:trim(name))}"},
		{"@{fn:add(1,2)}", "@{fn:add(1, 2)}"},
	}
	for _, tt := range tests {
		b, err := Compile(tt.src, env)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		if got := b.String(); got != tt.want {
			t.Errorf("String of %q = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestEvaluateDegradesToNull(t *testing.T) {
	env := NewEnv()
	data := mustNode(t, `{"a": null}`)
	for _, src := range []string{"@{a.b}", "@{a}", "@{missing.path}"} {
		b, err := Compile(src, env)
		if err != nil {
			t.Fatal(err)
		}
		out := b.Evaluate(env, data, -1)
		if out == nil || out.Type != ir.NullType {
			t.Errorf("%s evaluated to %+v, want null", src, out)
		}
	}
}

func TestSplitCall(t *testing.T) {
	tests := []struct {
		src  string
		name string
		args string
		ok   bool
	}{
		{"fn:concat('a', b)", "concat", "'a', b", true},
		{"fn:now()", "now", "", true},
		{"fn:()", "", "", false},
		{"fn:concat", "", "", false},
		{"user.name", "", "", false},
		{"fn:f(a", "", "", false},
	}
	for _, tt := range tests {
		name, args, ok := splitCall(tt.src)
		if name != tt.name || args != tt.args || ok != tt.ok {
			t.Errorf("splitCall(%q) = %q, %q, %v, want %q, %q, %v",
				tt.src, name, args, ok, tt.name, tt.args, tt.ok)
		}
	}
}
