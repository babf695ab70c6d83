package balance

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/corefclean/tag"
)

func TestSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		res  Result
	}{
		{
			name: "balanced untouched",
			in:   "The|(e1 big dog|e1) barked",
			want: "The|(e1 big dog|e1) barked",
		},
		{
			name: "unclosed open",
			in:   "cat|(e1 sat",
			want: "cat|(e1) sat",
			res:  Result{Repairs: 1},
		},
		{
			name: "close without open",
			in:   "The dog|e1)",
			want: "The dog|(e1)",
			res:  Result{Repairs: 1},
		},
		{
			name: "complete mention",
			in:   "she|(e2) left",
			want: "she|(e2) left",
		},
		{
			name: "multiple pipes",
			in:   "word|e1|e2",
			want: "word",
			res:  Result{Dropped: 1},
		},
		{
			name: "unparsable tag dropped",
			in:   "dog|(e1),foo",
			want: "dog|(e1)",
			res:  Result{Dropped: 1},
		},
		{
			name: "tag without brackets dropped",
			in:   "dog|e1",
			want: "dog",
			res:  Result{Dropped: 1},
		},
		{
			name: "nested same entity closes innermost",
			in:   "a|(e1 b|(e1 c|e1)",
			want: "a|(e1) b|(e1 c|e1)",
			res:  Result{Repairs: 1},
		},
		{
			name: "several entities on one word",
			in:   "John|(e1,(e2) 's|e1) car|e3)",
			want: "John|(e1,(e2) 's|e1) car|(e3)",
			res:  Result{Repairs: 1},
		},
		{
			name: "unclosed open position after dropped tag",
			in:   "x|zz,(e4 y",
			want: "x|(e4) y",
			res:  Result{Repairs: 1, Dropped: 1},
		},
		{
			name: "close before open",
			in:   "a|e5) b|(e5",
			want: "a|(e5) b|(e5)",
			res:  Result{Repairs: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, res := New(nil).Sentence(strings.Fields(tc.in))
			assert.Equal(t, tc.want, strings.Join(got, " "))
			assert.Equal(t, tc.res, res)
		})
	}
}

func TestSentenceEmpty(t *testing.T) {
	got, res := New(nil).Sentence(nil)
	assert.Empty(t, got)
	assert.Equal(t, Result{}, res)
}

func TestSentenceIdempotent(t *testing.T) {
	inputs := []string{
		"a|(e1 b|(e1 c|e1)",
		"a|e5) b|(e5 c|(e6,e7)",
		"word|e1|e2 x|(e1) y|(e2",
	}

	b := New(nil)
	for _, in := range inputs {
		once, _ := b.Sentence(strings.Fields(in))
		twice, res := b.Sentence(once)
		assert.Equal(t, once, twice, in)
		assert.Equal(t, Result{}, res, in)
	}
}

func TestResultMismatched(t *testing.T) {
	assert.False(t, Result{}.Mismatched())
	assert.False(t, Result{Dropped: 2}.Mismatched())
	assert.True(t, Result{Repairs: 1}.Mismatched())
	assert.True(t, Result{Abandoned: 1}.Mismatched())
}

func TestSentenceLogsMismatch(t *testing.T) {
	var buf bytes.Buffer
	b := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b.Sentence([]string{"cat|(e1", "sat"})
	assert.Contains(t, buf.String(), "mismatched parentheses in sentence")
	assert.Contains(t, buf.String(), "abandoned=0")

	buf.Reset()
	b.Sentence([]string{"cat|(e1)", "sat"})
	assert.NotContains(t, buf.String(), "mismatched parentheses")
}

func TestWordsDefensiveBranches(t *testing.T) {
	words := []tag.Word{
		{Text: "a", Tags: []tag.Tag{{Entity: "1"}}},
		{Text: "b", Tags: []tag.Tag{{Entity: "2", Opens: true}}},
	}

	res := New(nil).Words(words)

	assert.Equal(t, Result{Repairs: 1, Dropped: 1}, res)
	assert.Nil(t, words[0].Tags)
	assert.Equal(t, "b|(e2)", words[1].String())
}

func TestCloseAtMismatch(t *testing.T) {
	words := []tag.Word{{Text: "a", Tags: []tag.Tag{{Entity: "1", Opens: true, Closes: true}}}}

	assert.False(t, closeAt(words, position{word: 0, tag: 0}, "1"))
	assert.False(t, closeAt(words, position{word: 0, tag: 3}, "1"))
	assert.False(t, closeAt(words, position{word: 2, tag: 0}, "1"))

	words[0].Tags[0].Closes = false
	assert.False(t, closeAt(words, position{word: 0, tag: 0}, "9"))
	require.True(t, closeAt(words, position{word: 0, tag: 0}, "1"))
	assert.True(t, words[0].Tags[0].Complete())
}

// checkBalanced verifies that every entity is opened as often as it is
// closed within the sentence.
func checkBalanced(t *testing.T, tokens []string) {
	t.Helper()
	opens := map[string]int{}
	closes := map[string]int{}
	for _, token := range tokens {
		w, problems := tag.ParseWord(token)
		if len(problems) > 0 {
			t.Fatalf("balanced token %q does not parse: %v", token, problems)
		}
		for _, tg := range w.Tags {
			if tg.Opens {
				opens[tg.Entity]++
			}
			if tg.Closes {
				closes[tg.Entity]++
			}
		}
	}
	for e := range opens {
		if opens[e] != closes[e] {
			t.Fatalf("entity %s: %d opens, %d closes in %q", e, opens[e], closes[e], tokens)
		}
	}
	for e := range closes {
		if opens[e] != closes[e] {
			t.Fatalf("entity %s: %d opens, %d closes in %q", e, opens[e], closes[e], tokens)
		}
	}
}

func FuzzSentence(f *testing.F) {
	f.Add("cat|(e1 sat")
	f.Add("The dog|e1)")
	f.Add("a|(e1,(e2 b|e2),e1) c|e3)")
	f.Add("w|e1|e2 x|(e1)) y|,")

	f.Fuzz(func(t *testing.T, s string) {
		tokens := strings.Fields(s)
		b := New(nil)

		got, _ := b.Sentence(tokens)
		if len(got) != len(tokens) {
			t.Fatalf("len(got)=%d, want %d", len(got), len(tokens))
		}
		checkBalanced(t, got)

		again, res := b.Sentence(got)
		if strings.Join(again, " ") != strings.Join(got, " ") || res != (Result{}) {
			t.Fatalf("not idempotent: %q -> %q (%+v)", got, again, res)
		}
	})
}
