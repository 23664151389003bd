package cif

import (
	"fmt"
	"regexp"
	"strings"
)

// rawBlock is a block heading paired with the unparsed text between it and
// the next heading. It only lives for the duration of one extraction.
type rawBlock struct {
	header string
	body   string
}

// splitBlocks partitions filtered text into named blocks. Text before the
// first heading is discarded; a document with no heading yields no blocks.
func splitBlocks(filtered string) []rawBlock {
	var (
		blocks []rawBlock
		body   []string
	)
	flush := func() {
		if len(blocks) > 0 {
			blocks[len(blocks)-1].body = strings.Join(body, "\n")
		}
		body = body[:0]
	}
	for _, line := range strings.Split(filtered, "\n") {
		if blockHeadingRE.MatchString(line) {
			flush()
			blocks = append(blocks, rawBlock{header: blockHeadingRE.FindString(line)})
			continue
		}
		body = append(body, line)
	}
	flush()
	return blocks
}

// extractPass is one regex-driven extraction pass. Each pass carries its own
// post-match transform, fixed at construction, so applying a pass never
// needs to know which pattern it runs.
type extractPass struct {
	pattern   *regexp.Regexp
	transform func(string) string
}

var (
	// A text field becomes a single quoted scalar with its embedded
	// newlines intact, so it obeys the same quoting rule as every other
	// extracted scalar.
	semicolonPass = extractPass{
		pattern: semicolonItemBodyRE,
		transform: func(s string) string {
			return "'" + strings.TrimSuffix(s, "\n") + "'"
		},
	}

	inlinePass = extractPass{
		pattern:   inlineItemBodyRE,
		transform: func(s string) string { return s },
	}
)

// apply records every match of the pass in items and returns the body with
// all matched spans removed. The input slice is never mutated; later passes
// see only the returned remainder.
func (p extractPass) apply(body string, items *Items) string {
	for _, m := range p.pattern.FindAllStringSubmatch(body, -1) {
		items.set(m[1], Value{Scalar: p.transform(m[2])})
	}
	return p.pattern.ReplaceAllString(body, "")
}

// extractItems runs the three extraction passes over one block body in their
// fixed order: semicolon text fields, inline items, loops.
func extractItems(body string) *Items {
	items := newItems()
	rest := semicolonPass.apply(body, items)
	rest = inlinePass.apply(rest, items)
	extractLoops(rest, items)
	return items
}

// extractLoops consumes every loop left in the remainder after the scalar
// passes. Each loop becomes a fresh Table keyed by a canonical name when one
// of its columns matches a rename hint, and by its ordinal "loop_N" key
// otherwise (or when the canonical key is already taken).
func extractLoops(rest string, items *Items) {
	lines := strings.Split(rest, "\n")
	ordinal := 0
	i := 0
	for i < len(lines) {
		if !loopRE.MatchString(lines[i]) {
			i++
			continue
		}
		i++

		var columns []string
		for i < len(lines) && dataNameRE.MatchString(lines[i]) {
			columns = append(columns, dataNameRE.FindStringSubmatch(lines[i])[1])
			i++
		}

		table := newTable(columns)
		for i < len(lines) && !loopRE.MatchString(lines[i]) {
			if lines[i] == "" {
				i++
				continue
			}
			vals := tokenizeValues(lines[i])
			for j, col := range columns {
				if j < len(vals) {
					table.cells[col] = append(table.cells[col], vals[j])
				}
			}
			i++
		}

		ordinal++
		key := canonicalLoopName(columns)
		if key == "" {
			key = fmt.Sprintf("loop_%d", ordinal)
		}
		if !items.set(key, Value{Table: table}) {
			items.set(fmt.Sprintf("loop_%d", ordinal), Value{Table: table})
		}
	}
}
