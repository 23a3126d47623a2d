package parse

import (
	"testing"

	"github.com/loomui/go-loom/format"
	"github.com/loomui/go-loom/ir"
)

func TestParseJSON(t *testing.T) {
	node, err := Parse([]byte(`{"name": "Ann", "score": 0.30000000000000004, "tags": ["a"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("root type = %s", node.Type)
	}
	if got := ir.Get(node, "name"); got == nil || got.String != "Ann" {
		t.Errorf("name = %+v", got)
	}
	score := ir.Get(node, "score")
	if score == nil || score.Number != "0.30000000000000004" {
		t.Errorf("score did not keep its text: %+v", score)
	}
	tags := ir.Get(node, "tags")
	if tags == nil || tags.Type != ir.ArrayType || len(tags.Values) != 1 {
		t.Errorf("tags = %+v", tags)
	}
}

func TestParseYAML(t *testing.T) {
	src := []byte("user:\n  name: Ann\nitems:\n  - 1\n  - 2\n")
	node, err := Parse(src, ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	name := ir.Get(ir.Get(node, "user"), "name")
	if name == nil || name.String != "Ann" {
		t.Errorf("user.name = %+v", name)
	}
	items := ir.Get(node, "items")
	if items == nil || len(items.Values) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if v, ok := items.Values[0].Int(); !ok || v != 1 {
		t.Errorf("items[0] = %+v", items.Values[0])
	}
}

func TestParseBadInput(t *testing.T) {
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Errorf("accepted truncated json")
	}
	if _, err := Parse([]byte(`{"a": 1}`), ParseFormat(format.Format(9))); err == nil {
		t.Errorf("accepted unknown format")
	}
}
