package token

import "fmt"

// Pos locates a token in its source. Line and Col are 1-based.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d (offset %d)", p.Line, p.Col, p.Off)
}
