package encode

type EncodeOption func(*EncState)

// Indent sets the block-form indent width (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indent depth for block-form output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Brackets selects the single-line flow form.
func Brackets(v bool) EncodeOption {
	return func(es *EncState) { es.brackets = v }
}

// EncodeColors installs a color scheme. A nil scheme is a no-op, so
// EncodeColors(AutoColors()) is safe off a terminal.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
