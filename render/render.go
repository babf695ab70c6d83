package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/revelaction/corefclean/stat"
	"github.com/revelaction/corefclean/storage"
	"github.com/revelaction/corefclean/tag"
)

type Renderer struct {
	Out io.Writer

	HasColor bool

	// HasPrefix prints the prefix passed to Sentence before each sentence
	HasPrefix bool

	changed *color.Color
	tags    *color.Color
}

func NewRenderer(out io.Writer) *Renderer {
	changed := color.New(color.FgRed, color.Bold)
	changed.EnableColor()
	tags := color.New(color.FgYellow)
	tags.EnableColor()

	return &Renderer{
		Out:       out,
		HasColor:  true,
		HasPrefix: true,
		changed:   changed,
		tags:      tags,
	}
}

// Sentence writes the cleaned words of a sentence. Words that differ from the
// corresponding input words are highlighted. before may be nil.
func (r *Renderer) Sentence(prefix string, before, after []string) {
	if !r.HasPrefix {
		prefix = ""
	}
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.SentenceString(before, after))
}

// SentenceString renders a sentence like Sentence, without prefix and
// newline.
func (r *Renderer) SentenceString(before, after []string) string {
	sl := make([]string, len(after))
	for i, word := range after {
		isChanged := i < len(before) && before[i] != word
		sl[i] = r.word(word, isChanged)
	}
	return strings.Join(sl, " ")
}

func (r *Renderer) word(word string, isChanged bool) string {
	if !r.HasColor {
		return word
	}

	if isChanged {
		return r.changed.Sprint(word)
	}

	text, tags, found := strings.Cut(word, tag.Separator)
	if !found {
		return word
	}
	return text + r.tags.Sprint(tag.Separator+tags)
}

// Stats writes a human readable summary of run statistics.
func (r *Renderer) Stats(stats stat.Stats) {
	fmt.Fprintf(r.Out, "Num docs %d, num sentences %d, num words %d, words per sentence %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumWords, stats.WordsPerSentenceMean)
	fmt.Fprintf(r.Out, "Alignment: %d inserted, %d replaced, %d deleted\n",
		stats.Ops.Insert, stats.Ops.Replace, stats.Ops.Delete)
	fmt.Fprintf(r.Out, "Tags: %d repaired in %d sentences, %d dropped, %d abandoned\n",
		stats.Balance.Repairs, stats.SentencesRepaired, stats.Balance.Dropped, stats.Balance.Abandoned)

	keys := make([]int, 0, len(stats.RepairsPerSentenceDis))
	for k := range stats.RepairsPerSentenceDis {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		fmt.Fprintf(r.Out, "  %3d repairs: %d sentences\n", k, stats.RepairsPerSentenceDis[k])
	}
}

// Runs lists runs of a SQLite output.
func (r *Renderer) Runs(runs []storage.Run) {
	for _, run := range runs {
		fmt.Fprintf(r.Out, "📖 %s %s %d docs %s %s\n",
			run.Id, run.Created.Format("2006-01-02 15:04:05"), run.NumDocs, run.Input, run.Gold)
	}
}
