package token

import (
	"fmt"
	"strconv"
)

// Pos locates a line in the input document.
type Pos struct {
	// Line is 1-based; 0 means unknown.
	Line int
	// Text is the raw line, before comment stripping.
	Text string
}

func (p *Pos) String() string {
	if p == nil {
		return "<unknown>"
	}
	if p.Line == 0 {
		return strconv.Quote(p.Text)
	}
	return fmt.Sprintf("line %d: %q", p.Line, p.Text)
}
