package sentence

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("corrected words do not fit gold sentence lengths")

// Doc is a gold document: the reference tokenization, split into sentences
// of plain words.
type Doc struct {
	// Id is the document name from the newdoc comment, if any.
	Id string `json:"id"`

	Sentences [][]string `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Words returns the words of all sentences of the doc, in order.
func (d Doc) Words() []string {
	words := make([]string, 0, d.NumWords())
	for _, s := range d.Sentences {
		words = append(words, s...)
	}
	return words
}

// Lengths returns the number of words of each sentence.
func (d Doc) Lengths() []int {
	lengths := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		lengths[i] = len(s)
	}
	return lengths
}

func (d Doc) NumWords() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s)
	}
	return n
}

// Split cuts words into consecutive sentences of the given lengths. All
// words must be consumed: the sum of lengths has to be len(words).
func Split(words []string, lengths []int) ([][]string, error) {
	total := 0
	for _, l := range lengths {
		total += l
	}
	if total != len(words) {
		return nil, fmt.Errorf("%w: %d words, gold sentences hold %d", ErrLengthMismatch, len(words), total)
	}

	sentences := make([][]string, len(lengths))
	offset := 0
	for i, l := range lengths {
		sentences[i] = words[offset : offset+l : offset+l]
		offset += l
	}

	return sentences, nil
}
