package parse

import (
	"strings"

	"github.com/signadot/ascconv/token"
)

const (
	BeginMarker = token.BeginMarker
	EndMarker   = token.EndMarker
	markerClose = "###"
)

// Sections is the result of splitting a protocol dump at its markers.
type Sections struct {
	// Header is the begin marker line, "" if there is none.
	Header string
	// Body is the text between the markers, or all of the input when
	// there is no begin marker.
	Body string
	// BodyLine is the 1-based line number of the first body line in the
	// input.
	BodyLine int
	// Found reports whether a begin marker was present, Closed whether
	// an end marker followed it.
	Found, Closed bool
}

// SplitSections locates the ASCCONV begin and end marker lines in text.
// Only the first marked section is used. A begin marker without an end
// marker extends the body to the end of text.
func SplitSections(text string) *Sections {
	lines := strings.Split(text, "\n")
	begin := -1
	for i, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), BeginMarker) {
			begin = i
			break
		}
	}
	if begin < 0 {
		return &Sections{Body: text, BodyLine: 1}
	}
	res := &Sections{
		Header:   strings.TrimSpace(lines[begin]),
		BodyLine: begin + 2,
		Found:    true,
	}
	end := len(lines)
	for i := begin + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == EndMarker {
			end = i
			res.Closed = true
			break
		}
	}
	res.Body = strings.Join(lines[begin+1:end], "\n")
	return res
}
