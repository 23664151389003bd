package cif

// tokenizeValues splits a line into value tokens. A token is either a
// single- or double-quoted string (quotes kept, contents may include
// whitespace) or a maximal run of non-whitespace characters that does not
// begin with an underscore or a comment hash. The same rule serves inline
// values and loop rows, so every scalar in a parse result is quoted exactly
// as it was written.
func tokenizeValues(line string) []string {
	return valueTokenRE.FindAllString(line, -1)
}

// Unquote strips one pair of matching single or double quotes from a scalar
// value, if present. Scalars keep their source quoting by construction; this
// is the documented way for consumers to remove it.
func Unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
