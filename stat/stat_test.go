package stat

import (
	"testing"

	"github.com/revelaction/corefclean/align"
	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/clean"
)

func TestAggregate(t *testing.T) {
	hdl := NewHandler()

	hdl.Aggregate(clean.Result{
		Sentences: []clean.Sentence{
			{Words: 4, Result: balance.Result{Repairs: 2}},
			{Words: 2},
		},
		Ops:     align.Ops{Insert: 1},
		Balance: balance.Result{Repairs: 2},
	})
	hdl.Aggregate(clean.Result{
		Sentences: []clean.Sentence{
			{Words: 3, Result: balance.Result{Repairs: 1, Dropped: 1}},
		},
		Ops:     align.Ops{Delete: 2},
		Balance: balance.Result{Repairs: 1, Dropped: 1},
	})

	stats := hdl.Get()

	if stats.NumDocs != 2 || stats.NumSentences != 3 || stats.NumWords != 9 {
		t.Errorf("unexpected counts %+v", stats)
	}

	if stats.WordsPerSentenceMean != 3 {
		t.Errorf("expected mean 3, got %d", stats.WordsPerSentenceMean)
	}

	if stats.SentencesRepaired != 2 {
		t.Errorf("expected 2 repaired sentences, got %d", stats.SentencesRepaired)
	}

	if stats.Ops != (align.Ops{Insert: 1, Delete: 2}) {
		t.Errorf("unexpected ops %+v", stats.Ops)
	}

	if stats.Balance != (balance.Result{Repairs: 3, Dropped: 1}) {
		t.Errorf("unexpected balance %+v", stats.Balance)
	}

	if stats.RepairsPerSentenceDis[0] != 1 || stats.RepairsPerSentenceDis[1] != 1 || stats.RepairsPerSentenceDis[2] != 1 {
		t.Errorf("unexpected distribution %v", stats.RepairsPerSentenceDis)
	}
}

func TestAggregateEmptyDoc(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(clean.Result{})

	stats := hdl.Get()
	if stats.NumDocs != 1 || stats.WordsPerSentenceMean != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
