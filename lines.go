package cif

import "strings"

// lineSource yields the lines of a document one at a time, tracking the
// 1-based number of the line most recently returned.
type lineSource struct {
	lines []string
	pos   int
}

func newLineSource(raw string) *lineSource {
	return &lineSource{lines: strings.Split(raw, "\n")}
}

// next returns the next line and true, or "" and false once the input is
// exhausted.
func (s *lineSource) next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// lineNum returns the 1-based number of the line last returned by next.
func (s *lineSource) lineNum() int {
	return s.pos
}

// stripCommentsAndBlanks removes comment lines and blank lines from raw
// text. Only the extraction path uses this; the validator walks the original
// lines so its errors keep the original numbering.
func stripCommentsAndBlanks(raw string) string {
	lines := strings.Split(raw, "\n")
	keep := lines[:0]
	for _, line := range lines {
		if !commentOrBlankRE.MatchString(line) {
			keep = append(keep, line)
		}
	}
	return strings.Join(keep, "\n")
}
