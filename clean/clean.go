// Package clean runs the two cleaning stages over documents: alignment of
// the noisy tokens to the gold tokenization, then balancing of the entity
// tags of each gold sentence.
package clean

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/revelaction/corefclean/align"
	"github.com/revelaction/corefclean/balance"
	sent "github.com/revelaction/corefclean/sentence"
)

// Sentence is one cleaned gold sentence.
type Sentence struct {
	Text string `json:"text"`

	Words int `json:"words"`

	balance.Result
}

// Result is a cleaned document.
type Result struct {
	// Index is the position of the document in the input.
	Index int `json:"index"`

	// DocId is the gold document id.
	DocId string `json:"doc_id"`

	// Noisy is the input line as read.
	Noisy string `json:"-"`

	// Text is the cleaned document: its sentences joined by single spaces.
	Text string `json:"text"`

	Sentences []Sentence `json:"sentences"`

	Ops align.Ops `json:"ops"`

	// Balance sums the balancer results of all sentences.
	Balance balance.Result `json:"balance"`
}

// Cleaner cleans documents. A Cleaner is safe for concurrent use.
type Cleaner struct {
	// Workers is the number of documents cleaned concurrently. Values below
	// one mean runtime.NumCPU().
	Workers int

	logger   *slog.Logger
	aligner  *align.Aligner
	balancer *balance.Balancer
}

// New returns a Cleaner logging to logger. A nil logger discards the logs.
func New(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cleaner{
		logger:   logger,
		aligner:  align.New(logger),
		balancer: balance.New(logger),
	}
}

// Document cleans one noisy document against its gold counterpart.
//
// The noisy text is split on whitespace, aligned to the flattened gold words
// and cut into the gold sentences before each sentence is balanced.
func (c *Cleaner) Document(noisy string, gold sent.Doc) (Result, error) {
	res := Result{DocId: gold.Id, Noisy: noisy}

	corrected, ops := c.aligner.Align(strings.Fields(noisy), gold.Words())
	res.Ops = ops

	sentences, err := sent.Split(corrected, gold.Lengths())
	if err != nil {
		return Result{}, fmt.Errorf("doc %q: %w", gold.Id, err)
	}

	res.Sentences = make([]Sentence, 0, len(sentences))
	texts := make([]string, 0, len(sentences))

	for _, s := range sentences {
		balanced, br := c.balancer.Sentence(s)
		text := strings.Join(balanced, " ")

		res.Sentences = append(res.Sentences, Sentence{Text: text, Words: len(balanced), Result: br})
		res.Balance.Add(br)

		if text != "" {
			texts = append(texts, text)
		}
	}

	res.Text = strings.Join(texts, " ")
	return res, nil
}

// Run cleans noisy[i] against gold[i] for every document, with up to Workers
// documents in flight. Results are returned in input order. When the inputs
// have different lengths the surplus of the longer one is ignored.
//
// onDone, if not nil, is called after each document is cleaned. It may be
// called from several goroutines at once.
func (c *Cleaner) Run(ctx context.Context, noisy []string, gold sent.Library, onDone func(Result)) ([]Result, error) {
	n := min(len(noisy), len(gold))
	if len(noisy) != len(gold) {
		c.logger.Warn("input and gold document counts differ",
			slog.Int("input", len(noisy)),
			slog.Int("gold", len(gold)),
			slog.Int("cleaned", n),
		)
	}

	workers := c.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < n; i++ {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := c.Document(noisy[i], gold[i])
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			res.Index = i
			results[i] = res

			if onDone != nil {
				onDone(res)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// the parent context may be canceled before any goroutine noticed
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
