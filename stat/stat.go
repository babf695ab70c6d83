package stat

import (
	"github.com/revelaction/corefclean/align"
	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/clean"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs      int `json:"num_docs"`
	NumSentences int `json:"num_sentences"`
	NumWords     int `json:"num_words"`

	// SentencesRepaired counts sentences with at least one repair.
	SentencesRepaired int `json:"sentences_repaired"`

	WordsPerSentenceMean int `json:"words_per_sentence_mean"`

	Ops     align.Ops      `json:"ops"`
	Balance balance.Result `json:"balance"`

	// RepairsPerSentenceDis maps a number of repairs to the number of
	// sentences that needed that many.
	RepairsPerSentenceDis map[int]int `json:"repairs_per_sentence"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{RepairsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(res clean.Result) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(res.Sentences)
	h.stats.Ops.Add(res.Ops)
	h.stats.Balance.Add(res.Balance)

	for _, s := range res.Sentences {
		h.stats.NumWords += s.Words
		h.stats.RepairsPerSentenceDis[s.Repairs]++
		if s.Repairs > 0 {
			h.stats.SentencesRepaired++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}
}
