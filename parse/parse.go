// Package parse decodes JSON and YAML data documents into ir.Node trees.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/loomui/go-loom/format"
	"github.com/loomui/go-loom/ir"

	"github.com/goccy/go-yaml"
)

type parseConfig struct {
	format format.Format
}

type ParseOption func(*parseConfig)

func ParseFormat(f format.Format) ParseOption {
	return func(c *parseConfig) {
		c.format = f
	}
}

// Parse decodes d into a node tree. The default format is JSON; numeric
// values keep their unparsed text and are parsed on demand.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := &parseConfig{format: format.JSONFormat}
	for _, opt := range opts {
		opt(cfg)
	}
	var v any
	switch cfg.format {
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, cfg.format)
	}
	return ir.FromAny(v)
}
