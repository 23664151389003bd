package cif

import (
	"errors"
	"fmt"
	"strings"
)

// Error messages produced by the validator. Downstream tooling matches on
// these strings, so they are part of the package contract.
const (
	msgMissingName  = "Missing inline data name"
	msgInvalidValue = "Invalid inline data value"
	msgLoopMismatch = "Unmatched data values to data names in loop"
	msgUnclosed     = "Unclosed semicolon text field"
)

// ErrEmptyInput is reported by Validate and Parse for an empty or
// whitespace-only document. An empty document is degenerate but tolerated:
// callers may discard the error with errors.Is(err, ErrEmptyInput).
var ErrEmptyInput = errors.New("empty input")

// ParseError describes the first syntax violation found in a document. Line
// numbers are 1-based and refer to the original, unfiltered input.
type ParseError struct {
	Msg  string // one of the message constants above
	Line int    // 1-based line number of the fault
	Text string // the offending line, verbatim
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d: %q", e.Msg, e.Line, e.Text)
}

// validator is a state machine over the original line stream. It builds no
// output; it only decides whether the input conforms and, if not, where the
// first violation is.
type validator struct {
	src *lineSource
	cur string
	eof bool
}

// Validate checks data for syntax errors without building any structure. It
// returns nil for a well-formed document, ErrEmptyInput for an empty one,
// and a *ParseError describing the first violation otherwise. Validation is
// deterministic: an unchanged input always yields the same result.
func Validate(data []byte) error {
	raw := string(data)
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyInput
	}

	v := &validator{src: newLineSource(raw)}
	v.advance()
	return v.run()
}

// advance moves to the next line, reporting false at end of input. The
// current line and its number are left untouched at EOF so that errors
// discovered there can still be attributed to the last real line.
func (v *validator) advance() bool {
	line, ok := v.src.next()
	if !ok {
		v.eof = true
		return false
	}
	v.cur = line
	return true
}

// errorf builds a ParseError at the current line.
func (v *validator) errorf(msg string) *ParseError {
	return &ParseError{Msg: msg, Line: v.src.lineNum(), Text: v.cur}
}

// run dispatches lines from the top-level state until the input is exhausted
// or a violation is found.
func (v *validator) run() error {
	for !v.eof {
		switch {
		case v.isValidSingleLine():
			v.advance()
		case loopRE.MatchString(v.cur):
			if err := v.validateLoop(); err != nil {
				return err
			}
		case dataValueStartRE.MatchString(strings.TrimLeft(v.cur, " \t")):
			return v.errorf(msgMissingName)
		case dataNameRE.MatchString(v.cur):
			if err := v.validateLoneDataName(); err != nil {
				return err
			}
		default:
			// A line no rule can claim, such as a bare underscore. Treated
			// as a malformed inline item rather than looping forever.
			return v.errorf(msgInvalidValue)
		}
	}
	return nil
}

// isValidSingleLine reports whether the current line is valid on its own and
// needs no further context: a comment, a blank line, a complete inline data
// item, or a block heading.
func (v *validator) isValidSingleLine() bool {
	return commentOrBlankRE.MatchString(v.cur) ||
		inlineItemRE.MatchString(v.cur) ||
		blockHeadingRE.MatchString(v.cur)
}

// validateLoop checks one loop: a marker line, a run of declared names, then
// value rows whose token counts must equal the declared name count. It stops
// at the first line that is not a value row, leaving it for the top-level
// dispatch.
func (v *validator) validateLoop() error {
	names := v.loopDataNames()
	for !v.eof {
		switch {
		case commentOrBlankRE.MatchString(v.cur):
			v.advance()
		case v.isLoopDataValues():
			if len(tokenizeValues(v.cur)) != len(names) {
				return v.errorf(msgLoopMismatch)
			}
			v.advance()
		default:
			return nil
		}
	}
	return nil
}

// loopDataNames consumes the loop marker line and the contiguous run of
// declared data names that follows it, skipping comments and blanks.
func (v *validator) loopDataNames() []string {
	var names []string
	v.advance()
	for !v.eof {
		switch {
		case commentOrBlankRE.MatchString(v.cur):
			v.advance()
		case dataNameRE.MatchString(v.cur):
			names = append(names, dataNameRE.FindStringSubmatch(v.cur)[1])
			v.advance()
		default:
			return names
		}
	}
	return names
}

// isLoopDataValues reports whether the current line is a row of loop values,
// as opposed to a new loop marker or block heading.
func (v *validator) isLoopDataValues() bool {
	return dataValueStartRE.MatchString(v.cur) &&
		!loopRE.MatchString(v.cur) &&
		!blockHeadingRE.MatchString(v.cur)
}

// validateLoneDataName handles a data name with no value on its line. It is
// valid only as the opening of a semicolon text field; anything else is a
// missing inline value, attributed to the name line itself.
func (v *validator) validateLoneDataName() error {
	errLine, errText := v.src.lineNum(), v.cur
	if !v.advance() {
		return &ParseError{Msg: msgInvalidValue, Line: errLine, Text: errText}
	}
	if strings.HasPrefix(v.cur, ";") {
		return v.validateSemicolonField()
	}
	return &ParseError{Msg: msgInvalidValue, Line: errLine, Text: errText}
}

// validateSemicolonField checks a multi-line text field for a closing
// delimiter. Only a line starting with "_" in column 0 counts as a new data
// name here; an indented "_" is ordinary field content. The line that
// reveals an unclosed field (end of input, or a new data name) arrives one
// line after the actual fault, so the previous content line is remembered
// and the error attributed to it.
func (v *validator) validateSemicolonField() error {
	// Current line is the opening delimiter.
	prevLine, prevText := v.src.lineNum(), v.cur
	if !v.advance() {
		return &ParseError{Msg: msgUnclosed, Line: prevLine, Text: prevText}
	}
	for {
		if strings.HasPrefix(v.cur, ";") {
			v.advance()
			return nil
		}
		if strings.HasPrefix(v.cur, "_") {
			return &ParseError{Msg: msgUnclosed, Line: prevLine, Text: prevText}
		}
		prevLine, prevText = v.src.lineNum(), v.cur
		if !v.advance() {
			return &ParseError{Msg: msgUnclosed, Line: prevLine, Text: prevText}
		}
	}
}
