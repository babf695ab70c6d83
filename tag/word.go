package tag

import (
	"fmt"
	"strings"
)

// Word is a token of a sentence with its parsed tag list.
type Word struct {
	// Text is the word without tags.
	Text string

	Tags []Tag
}

// Problem describes a part of a token that could not be kept.
type Problem struct {
	// Raw is the piece of the token at fault: a single tag, or the whole
	// token when it carries more than one pipe.
	Raw string

	Err error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %q", p.Err, p.Raw)
}

// ParseWord splits a token into its text and its well-formed tags.
//
// Tags that do not follow the grammar or carry no bracket are left out and
// reported as problems. A token with more than one pipe keeps only its
// text; its whole tag payload is reported as a single problem.
func ParseWord(token string) (Word, []Problem) {
	splits := strings.Split(token, Separator)

	switch len(splits) {
	case 1:
		return Word{Text: token}, nil
	case 2:
	default:
		return Word{Text: splits[0]}, []Problem{{Raw: token, Err: ErrMultiplePipe}}
	}

	w := Word{Text: splits[0]}
	var problems []Problem

	for _, raw := range strings.Split(splits[1], ListSeparator) {
		t, err := Parse(raw)
		if err != nil {
			problems = append(problems, Problem{Raw: raw, Err: ErrInvalidTag})
			continue
		}

		if !t.Valid() {
			problems = append(problems, Problem{Raw: raw, Err: ErrNoBracket})
			continue
		}

		w.Tags = append(w.Tags, t)
	}

	return w, problems
}

// String serializes the word. A word without tags is emitted without pipe.
func (w Word) String() string {
	if len(w.Tags) == 0 {
		return w.Text
	}
	return w.Text + Separator + Join(w.Tags)
}
