package encode

type EncodeOption func(*EncState)

// Pretty controls width-aware layout; when false everything renders
// on one line.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Width sets the line width the pretty layout aims for (default 60).
func Width(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

// Indent sets the spaces per nesting level (default 1).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
