package segment

import "strings"

// Input is a consuming cursor over a string. It tracks a position and only
// ever moves forward; a failed match leaves the position untouched.
// Input is not safe for concurrent use; each call chain owns its cursor.
type Input struct {
	s   string
	pos int
}

// NewInput creates a cursor positioned at the start of s.
func NewInput(s string) *Input {
	return &Input{s: s}
}

// Remaining returns the unconsumed part of the input.
func (in *Input) Remaining() string {
	return in.s[in.pos:]
}

// Pos returns the number of bytes consumed so far.
func (in *Input) Pos() int {
	return in.pos
}

// Empty reports whether the entire input has been consumed.
func (in *Input) Empty() bool {
	return in.pos == len(in.s)
}

// ConsumePrefix advances the cursor past p if the remaining input starts
// with it, comparing byte-for-byte. Returns false, without moving, if it
// does not. An empty p never consumes.
func (in *Input) ConsumePrefix(p string) bool {
	if p == "" {
		return false
	}
	if !strings.HasPrefix(in.Remaining(), p) {
		return false
	}
	in.pos += len(p)
	return true
}

// Output is an append-only cursor for building path segments.
// The zero value is ready to use.
type Output struct {
	b strings.Builder
}

// Append writes s to the output.
func (out *Output) Append(s string) {
	out.b.WriteString(s)
}

// Len returns the number of bytes written so far.
func (out *Output) Len() int {
	return out.b.Len()
}

// String returns everything written so far.
func (out *Output) String() string {
	return out.b.String()
}
