// Package align matches the words of a noisy, tagged token stream against a
// gold tokenization.
//
// The alignment is a word-level edit distance. Words that survive unchanged
// carry their tags over to the result; every other position takes the gold
// word untagged. The result has exactly one word per gold word.
package align

import (
	"context"
	"log/slog"
	"slices"

	"github.com/antzucaro/matchr"

	"github.com/revelaction/corefclean/tag"
)

// Op is the kind of a backtrace step.
type Op int

const (
	Match Op = iota
	Replace
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Match:
		return "match"
	case Replace:
		return "replace"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	}
	return "unknown"
}

// Ops counts the non-match steps of an alignment.
type Ops struct {
	Insert  int `json:"insert"`
	Replace int `json:"replace"`
	Delete  int `json:"delete"`
}

// Total returns the number of edits.
func (o Ops) Total() int {
	return o.Insert + o.Replace + o.Delete
}

// Add accumulates other into o.
func (o *Ops) Add(other Ops) {
	o.Insert += other.Insert
	o.Replace += other.Replace
	o.Delete += other.Delete
}

func (o *Ops) count(op Op) {
	switch op {
	case Replace:
		o.Replace++
	case Delete:
		o.Delete++
	case Insert:
		o.Insert++
	}
}

// Aligner aligns noisy token streams to gold words.
type Aligner struct {
	logger *slog.Logger
}

// New returns an Aligner logging its diagnostics to logger. A nil logger
// discards them.
func New(logger *slog.Logger) *Aligner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Aligner{logger: logger}
}

// Align returns, for each gold word, the corrected word: the tagged noisy
// token when both words are equal, the gold word otherwise. Noisy tokens
// are compared by their text before the first pipe.
func (a *Aligner) Align(noisy, gold []string) ([]string, Ops) {
	keys := make([]string, len(noisy))
	for i, token := range noisy {
		keys[i] = tag.Text(token)
	}

	dp := distances(keys, gold)

	var (
		ops    Ops
		result = make([]string, 0, len(gold))
	)

	i, j := len(keys), len(gold)
	for i > 0 && j > 0 {
		switch {
		case keys[i-1] == gold[j-1]:
			result = append(result, noisy[i-1])
			i--
			j--
		case dp[i][j] == dp[i-1][j-1]+1:
			a.replaced(keys[i-1], gold[j-1])
			result = append(result, gold[j-1])
			ops.count(Replace)
			i--
			j--
		case dp[i][j] == dp[i-1][j]+1:
			ops.count(Delete)
			i--
		default:
			result = append(result, gold[j-1])
			ops.count(Insert)
			j--
		}
	}

	for ; j > 0; j-- {
		result = append(result, gold[j-1])
		ops.count(Insert)
	}

	if ops.Total() > 0 {
		a.logger.Debug("word problems",
			slog.Int("insert", ops.Insert),
			slog.Int("replace", ops.Replace),
			slog.Int("delete", ops.Delete),
		)
	}

	slices.Reverse(result)
	return result, ops
}

func (a *Aligner) replaced(noisy, gold string) {
	if !a.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	a.logger.Debug("replaced word",
		slog.String("noisy", noisy),
		slog.String("gold", gold),
		slog.Int("chars", matchr.Levenshtein(noisy, gold)),
	)
}

// distances fills the edit distance table between a and b. dp[i][j] is the
// distance between the first i words of a and the first j words of b.
func distances(a, b []string) [][]int {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = min(dp[i-1][j], dp[i][j-1], dp[i-1][j-1]) + 1
		}
	}

	return dp
}
