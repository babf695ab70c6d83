package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/revelaction/corefclean/stat"
	"github.com/revelaction/corefclean/storage"
)

func TestSentenceNoColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false

	r.Sentence("✍  0 ", []string{"cat|(e1", "sat"}, []string{"cat|(e1)", "sat"})

	if buf.String() != "✍  0 cat|(e1) sat\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSentenceNoPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false
	r.HasPrefix = false

	r.Sentence("✍  0 ", nil, []string{"a"})

	if buf.String() != "a\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSentenceStringColor(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	got := r.SentenceString([]string{"The", "dog|e1)"}, []string{"The", "dog|(e1)"})

	if !strings.HasPrefix(got, "The ") {
		t.Errorf("unchanged plain word must not be colored: %q", got)
	}
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "dog|(e1)") {
		t.Errorf("expected colored changed word, got %q", got)
	}
}

func TestSentenceStringTagColor(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	got := r.SentenceString([]string{"she|(e2)"}, []string{"she|(e2)"})

	if !strings.HasPrefix(got, "she\x1b[") {
		t.Errorf("expected plain text followed by colored tags, got %q", got)
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	stats := stat.Stats{NumDocs: 2, NumSentences: 3, RepairsPerSentenceDis: map[int]int{2: 1, 0: 2}}
	r.Stats(stats)

	out := buf.String()
	if !strings.HasPrefix(out, "Num docs 2, num sentences 3") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Index(out, "  0 repairs") > strings.Index(out, "  2 repairs") {
		t.Errorf("distribution not sorted: %q", out)
	}
}

func TestRuns(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Runs([]storage.Run{{Id: "abc", Created: time.Unix(0, 0).UTC(), NumDocs: 4, Input: "in.txt", Gold: "gold.conllu"}})

	if !strings.Contains(buf.String(), "abc") || !strings.Contains(buf.String(), "4 docs in.txt gold.conllu") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
