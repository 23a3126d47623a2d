package encode

import "github.com/loomui/go-loom/format"

type config struct {
	format format.Format
	indent bool
	colors *Colors
}

type EncodeOption func(*config)

func EncodeFormat(f format.Format) EncodeOption {
	return func(c *config) {
		c.format = f
	}
}

// EncodeIndent selects indented output; the default is compact.
func EncodeIndent(v bool) EncodeOption {
	return func(c *config) {
		c.indent = v
	}
}

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *config) {
		c.colors = colors
	}
}
