// Package balance repairs the entity brackets of one sentence so that every
// opened mention is closed within the sentence.
package balance

import (
	"log/slog"
	"strings"

	"github.com/revelaction/corefclean/tag"
)

// Result counts what the balancer changed in a sentence.
type Result struct {
	// Repairs is the number of tags rewritten into single-token mentions.
	Repairs int `json:"repairs"`

	// Dropped is the number of tags (or whole tag payloads of words with
	// multiple pipes) that could not be parsed and were removed.
	Dropped int `json:"dropped"`

	// Abandoned is the number of unclosed mentions whose recorded position
	// did not hold the expected open tag.
	Abandoned int `json:"abandoned"`
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.Repairs += other.Repairs
	r.Dropped += other.Dropped
	r.Abandoned += other.Abandoned
}

// Mismatched reports whether the sentence had unbalanced brackets, repaired
// or not.
func (r Result) Mismatched() bool {
	return r.Repairs+r.Abandoned > 0
}

// position addresses one tag of a sentence.
type position struct {
	word int
	tag  int
}

// Balancer balances the tags of sentences. It holds no per-sentence state and
// can be shared between goroutines.
type Balancer struct {
	logger *slog.Logger
}

// New returns a Balancer logging its diagnostics to logger. A nil logger
// discards them.
func New(logger *slog.Logger) *Balancer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Balancer{logger: logger}
}

// Sentence parses the tokens of a sentence and returns them balanced.
func (b *Balancer) Sentence(tokens []string) ([]string, Result) {
	if len(tokens) == 0 {
		return []string{}, Result{}
	}

	var res Result

	words := make([]tag.Word, len(tokens))
	for i, token := range tokens {
		w, problems := tag.ParseWord(token)
		for _, p := range problems {
			b.logger.Debug("dropping tag", slog.String("word", token), slog.String("reason", p.Error()))
		}
		res.Dropped += len(problems)
		words[i] = w
	}

	res.Add(b.Words(words))

	if res.Mismatched() {
		b.logger.Debug("mismatched parentheses in sentence",
			slog.Int("repairs", res.Repairs),
			slog.Int("abandoned", res.Abandoned),
			slog.String("sentence", strings.Join(tokens, " ")),
		)
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.String()
	}

	return out, res
}

// Words balances parsed words in place. Tags without brackets are removed.
func (b *Balancer) Words(words []tag.Word) Result {
	var res Result

	stacks := map[string][]position{}
	// order keeps the closure of unclosed mentions deterministic.
	var order []string

	for wi := range words {
		w := &words[wi]
		kept := w.Tags[:0]

		for _, t := range w.Tags {
			switch {
			case t.Complete():
				kept = append(kept, t)

			case t.Opens:
				if _, ok := stacks[t.Entity]; !ok {
					order = append(order, t.Entity)
				}
				stacks[t.Entity] = append(stacks[t.Entity], position{word: wi, tag: len(kept)})
				kept = append(kept, t)

			case t.Closes:
				if stack := stacks[t.Entity]; len(stack) > 0 {
					stacks[t.Entity] = stack[:len(stack)-1]
					kept = append(kept, t)
					continue
				}
				t.Opens = true
				kept = append(kept, t)
				res.Repairs++

			default:
				b.logger.Debug("completely invalid tag", slog.String("word", w.Text), slog.String("tag", t.String()))
				res.Dropped++
			}
		}

		if len(kept) == 0 {
			kept = nil
		}
		w.Tags = kept
	}

	for _, entity := range order {
		for _, pos := range stacks[entity] {
			if !closeAt(words, pos, entity) {
				b.logger.Debug("mismatched entity when converting unclosed entities",
					slog.String("entity", entity),
					slog.Int("word", pos.word),
					slog.Int("tag", pos.tag),
				)
				res.Abandoned++
				continue
			}
			res.Repairs++
		}
	}

	return res
}

// closeAt turns the open tag at pos into a single-token mention. It reports
// false, leaving the words untouched, when the slot is not an unclosed open
// of entity.
func closeAt(words []tag.Word, pos position, entity string) bool {
	if pos.word < 0 || pos.word >= len(words) {
		return false
	}
	tags := words[pos.word].Tags
	if pos.tag < 0 || pos.tag >= len(tags) {
		return false
	}

	t := &tags[pos.tag]
	if t.Entity != entity || !t.Opens || t.Closes {
		return false
	}

	t.Closes = true
	return true
}
