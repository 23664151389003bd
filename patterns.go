package cif

import "regexp"

// Compiled patterns used by the validator and the extraction passes. All are
// compiled once at process start and never mutated.
var (
	// commentOrBlankRE matches a comment line or a blank/whitespace-only line.
	commentOrBlankRE = regexp.MustCompile(`^\w*#|^\s*$`)

	// blockHeadingRE matches a data block heading at the start of a line.
	blockHeadingRE = regexp.MustCompile(`(?i)^data_\S*`)

	// loopRE matches a loop marker at the start of a line.
	loopRE = regexp.MustCompile(`(?i)^loop_`)

	// dataNameRE matches a data name, optionally indented.
	dataNameRE = regexp.MustCompile(`^\s*_(\S+)`)

	// dataValueStartRE reports whether a line begins with a value token: a
	// single- or double-quoted string, or a bare token that does not start
	// with an underscore or a comment hash.
	dataValueStartRE = regexp.MustCompile(`^\s*(?:'[^']+'|"[^"]+"|[^\s_#][^\s'"]*)`)

	// valueTokenRE captures individual value tokens within a line. Quoted
	// tokens keep their surrounding quotes.
	valueTokenRE = regexp.MustCompile(`'[^']+'|"[^"]+"|[^\s_#][^\s'"]*`)

	// inlineItemRE matches a name and its value on a single line.
	inlineItemRE = regexp.MustCompile(`^\s*_\S+[ \t]+(?:'[^']+'|"[^"]+"|[^\s_#][^\s'"]*)`)

	// semicolonItemBodyRE matches a complete semicolon text field inside a
	// filtered block body: a name line, an opening delimiter line, one or
	// more content lines (which may contain ';' as ordinary text but may not
	// begin with it), and a closing delimiter line.
	semicolonItemBodyRE = regexp.MustCompile(`(?:^|\n)[ \t]*_(\S+)\n;\n((?:[^;\n][^\n]*\n)+);`)

	// inlineItemBodyRE matches an inline data item inside a filtered block
	// body.
	inlineItemBodyRE = regexp.MustCompile(`(?:^|\n)[ \t]*_(\S+)[ \t]+('[^']+'|"[^"]+"|[^\s_#][^\s'"]*)`)
)

// loopHint maps a column-name pattern to a canonical table key. The list is
// scanned top to bottom and the first match wins, so more specific patterns
// must come before the general ones they overlap.
type loopHint struct {
	pattern *regexp.Regexp
	name    string
}

var loopHints = []loopHint{
	{regexp.MustCompile(`^atom_site_aniso`), "atom_site_aniso"},
	{regexp.MustCompile(`^atom_site`), "atom_site"},
	{regexp.MustCompile(`^atom_type`), "atom_type"},
	{regexp.MustCompile(`^symmetry_equiv`), "symmetry_equiv"},
	{regexp.MustCompile(`^publ_author`), "publ_author"},
	{regexp.MustCompile(`^citation`), "citation"},
}

// canonicalLoopName returns the canonical key for a loop whose declared
// column names are given, or "" when no hint matches.
func canonicalLoopName(columns []string) string {
	for _, hint := range loopHints {
		for _, col := range columns {
			if hint.pattern.MatchString(col) {
				return hint.name
			}
		}
	}
	return ""
}
