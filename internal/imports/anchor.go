package imports

import (
	"strings"

	"github.com/google/uuid"

	"github.com/toyz/polygen/internal/errors"
)

// Anchor is the sentinel line marking where the import block is spliced in.
// A random id keeps body text from ever colliding with it.
type Anchor string

// NewAnchor creates a fresh anchor rendered as a line comment.
func NewAnchor(commentPrefix string) Anchor {
	return Anchor(commentPrefix + " polygen:imports " + uuid.NewString())
}

// Line returns the anchor as a buffer line.
func (a Anchor) Line() string {
	return string(a)
}

// Count returns how many lines of the buffer are the anchor.
func (a Anchor) Count(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == string(a) {
			n++
		}
	}
	return n
}

// Splice replaces the anchor line with block. The anchor must appear exactly
// once; it is consumed, so a buffer can only be spliced once.
func Splice(lines []string, anchor Anchor, block []string, file string) ([]string, error) {
	at := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != string(anchor) {
			continue
		}
		if at >= 0 {
			return nil, errors.Newf(errors.GenerationErrorCode, "import anchor appears more than once in %s", file)
		}
		at = i
	}
	if at < 0 {
		return nil, errors.MissingAnchorError(file)
	}

	out := make([]string, 0, len(lines)-1+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	out = append(out, lines[at+1:]...)
	return out, nil
}

// Apply runs the whole pass: resolve the set, group, render and splice.
// It returns the new buffer and the resolved import names.
func Apply(lines []string, anchor Anchor, set *Set, opts Options, file string) ([]string, []string, error) {
	resolved := Names(Resolve(set.Entries(), opts))
	block := Render(Group(resolved, opts.preferred()), opts)

	out, err := Splice(lines, anchor, block, file)
	if err != nil {
		return nil, nil, err
	}
	return out, resolved, nil
}
