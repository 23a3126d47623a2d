package binding

import (
	"errors"
	"testing"

	"github.com/loomui/go-loom/fn"
	"github.com/loomui/go-loom/ir"
)

func TestCompileCallArgs(t *testing.T) {
	env := NewEnv()
	b, err := Compile("@{fn:concat('Hello, ', user.name)}", env)
	if err != nil {
		t.Fatal(err)
	}
	call := b.(*FuncBinding)
	if call.Name() != "concat" {
		t.Errorf("name = %q", call.Name())
	}
	args := call.Args()
	if len(args) != 2 {
		t.Fatalf("len(args) = %d", len(args))
	}
	if args[0].Type != ir.StringType || args[0].String != "Hello, " {
		t.Errorf("args[0] = %+v", args[0])
	}
	if args[1].Type != ir.PathBindingType {
		t.Errorf("args[1].Type = %s", args[1].Type)
	}
}

func TestCompileArgKinds(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		arg  string
		typ  ir.Type
		text string
	}{
		{"'quoted'", ir.StringType, "quoted"},
		{"true", ir.BoolType, ""},
		{"false", ir.BoolType, ""},
		{"null", ir.NullType, ""},
		{"3.5", ir.NumberType, ""},
		{"-2", ir.NumberType, ""},
		{"user.name", ir.PathBindingType, ""},
		{"items[0]", ir.PathBindingType, ""},
		{"fn:upper(x)", ir.FuncBindingType, ""},
		{"has space", ir.StringType, "has space"},
	}
	for _, tt := range tests {
		got := compileArg(tt.arg, env)
		if got.Type != tt.typ {
			t.Errorf("compileArg(%q).Type = %s, want %s", tt.arg, got.Type, tt.typ)
			continue
		}
		if tt.typ == ir.StringType && got.String != tt.text {
			t.Errorf("compileArg(%q).String = %q, want %q", tt.arg, got.String, tt.text)
		}
	}
}

func TestCallEvaluate(t *testing.T) {
	env := NewEnv()
	data := mustNode(t, `{"user": {"name": "Ann"}, "nums": [1, 2, 3]}`)
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "concat literal and path",
			src:  "@{fn:concat('Hello, ', user.name)}",
			want: `"Hello, Ann"`,
		},
		{
			name: "nested call",
			src:  "@{fn:upper(fn:concat(user.name, '!'))}",
			want: `"ANN!"`,
		},
		{
			name: "numeric fold",
			src:  "@{fn:add(1, 2, 3)}",
			want: `6`,
		},
		{
			name: "path argument to length",
			src:  "@{fn:length(nums)}",
			want: `3`,
		},
		{
			name: "missing path argument degrades to null text",
			src:  "@{fn:concat('x', user.missing)}",
			want: `"x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compile(tt.src, env)
			if err != nil {
				t.Fatal(err)
			}
			got := nodeJSON(t, b.Evaluate(env, data, -1))
			if got != tt.want {
				t.Errorf("%s = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestUnknownFunctionIsNoop(t *testing.T) {
	env := NewEnv()
	data := mustNode(t, `{}`)
	b, err := Compile("@{fn:noSuchFunction(1, 2)}", env)
	if err != nil {
		t.Fatal(err)
	}
	out := b.Evaluate(env, data, -1)
	if out.Type != ir.NullType {
		t.Errorf("unknown function evaluated to %s, want null", out.Type)
	}
}

func TestCallErrorDegradesToNull(t *testing.T) {
	env := NewEnv()
	env.Funcs = fn.NewRegistry()
	if err := env.Funcs.Register(&ir.Func{
		Name: "boom",
		Call: func(_ ir.Env, _ *ir.Node, _ int, _ []*ir.Node) (*ir.Node, error) {
			return nil, errors.New("boom")
		},
	}); err != nil {
		t.Fatal(err)
	}
	if err := env.Funcs.Register(&ir.Func{
		Name: "panics",
		Call: func(_ ir.Env, _ *ir.Node, _ int, _ []*ir.Node) (*ir.Node, error) {
			panic("panics")
		},
	}); err != nil {
		t.Fatal(err)
	}
	data := mustNode(t, `{}`)
	for _, src := range []string{"@{fn:boom()}", "@{fn:panics()}"} {
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

func TestDivisionByZeroDegradesToNull(t *testing.T) {
	env := NewEnv()
	data := mustNode(t, `{}`)
	for _, src := range []string{"@{fn:div(1, 0)}", "@{fn:mod(1, 0)}"} {
		b, err := Compile(src, env)
		if err != nil {
			t.Fatal(err)
		}
		out := b.Evaluate(env, data, -1)
		if out.Type != ir.NullType {
			t.Fatalf("%s evaluated to %+v, want null", src, out)
		}
		// the result must stay encodable
		if got := nodeJSON(t, out); got != "null" {
			t.Errorf("%s encoded as %s", src, got)
		}
	}
}

func TestCallValueCarriesSource(t *testing.T) {
	env := NewEnv()
	b, err := Compile("@{fn:upper(user.name)}", env)
	if err != nil {
		t.Fatal(err)
	}
	v := b.(*FuncBinding).Value()
	if v.Type != ir.FuncBindingType {
		t.Errorf("Value().Type = %s", v.Type)
	}
	if v.String != "@{fn:upper(user.name)}" {
		t.Errorf("Value().String = %q", v.String)
	}
	if v.Binding != b {
		t.Errorf("Value() does not carry the compiled binding")
	}
}
