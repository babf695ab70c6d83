package tag

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// Separator splits the word text from its tag list.
	Separator = "|"

	// ListSeparator splits the tags of a word.
	ListSeparator = ","
)

var (
	ErrInvalidTag   = errors.New("invalid tag")
	ErrNoBracket    = errors.New("tag has neither opening nor closing mark")
	ErrMultiplePipe = errors.New("multiple pipes in word")
)

// tagRe is the bit-exact grammar of one tag: an optional opening paren, the
// literal e, the entity id digits and an optional closing paren.
var tagRe = regexp.MustCompile(`^(\(?)e(\d+)(\)?)$`)

// Tag is one entity annotation of a word.
//
// A Tag with Opens and Closes set is a complete single-token mention. A Tag
// with only Opens starts a mention that a later word closes.
type Tag struct {
	// Entity is the entity id, the digits after the e.
	Entity string

	Opens  bool
	Closes bool
}

// Parse parses the textual form of one tag, e.g. "(e12", "e12)" or "(e3)".
//
// A tag without brackets parses successfully; it is up to the caller to
// reject it (see Valid).
func Parse(s string) (Tag, error) {
	m := tagRe.FindStringSubmatch(s)
	if m == nil {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}

	return Tag{
		Entity: m[2],
		Opens:  m[1] != "",
		Closes: m[3] != "",
	}, nil
}

// Valid reports whether the tag carries at least one bracket.
func (t Tag) Valid() bool {
	return t.Opens || t.Closes
}

// Complete reports whether the tag is a single-token mention.
func (t Tag) Complete() bool {
	return t.Opens && t.Closes
}

func (t Tag) String() string {
	var b strings.Builder
	if t.Opens {
		b.WriteByte('(')
	}
	b.WriteByte('e')
	b.WriteString(t.Entity)
	if t.Closes {
		b.WriteByte(')')
	}
	return b.String()
}

// Text returns the word part of a token, everything before the first pipe.
// It is the key the aligner compares tokens by.
func Text(token string) string {
	text, _, _ := strings.Cut(token, Separator)
	return text
}

// Join formats tags as a comma separated list.
func Join(tags []Tag) string {
	sl := make([]string, 0, len(tags))
	for _, t := range tags {
		sl = append(sl, t.String())
	}
	return strings.Join(sl, ListSeparator)
}
