package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/clean"
	"github.com/revelaction/corefclean/stat"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if _, ok := got["docs"]; ok {
		t.Errorf("expected no docs key, got %v", got["docs"])
	}

	if _, ok := got["run_id"]; ok {
		t.Errorf("expected no run_id key")
	}
}

func TestJSONRendererRenderOneDoc(t *testing.T) {
	hdl := stat.NewHandler()
	doc := clean.Result{
		Index: 0,
		DocId: "d1",
		Noisy: "cat|(e1 sat",
		Text:  "cat|(e1) sat",
		Sentences: []clean.Sentence{
			{Text: "cat|(e1) sat", Words: 2, Result: balance.Result{Repairs: 1}},
		},
		Balance: balance.Result{Repairs: 1},
	}
	hdl.Aggregate(doc)

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(Report{RunId: "r1", Stats: hdl.Get(), Docs: []clean.Result{doc}}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if report.RunId != "r1" {
		t.Errorf("expected run_id 'r1', got %q", report.RunId)
	}

	if report.Stats.Balance.Repairs != 1 {
		t.Errorf("expected 1 repair, got %d", report.Stats.Balance.Repairs)
	}

	if len(report.Docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(report.Docs))
	}

	if report.Docs[0].Noisy != "" {
		t.Errorf("noisy text must not be serialized, got %q", report.Docs[0].Noisy)
	}

	if report.Docs[0].Sentences[0].Repairs != 1 {
		t.Errorf("expected sentence repairs 1, got %d", report.Docs[0].Sentences[0].Repairs)
	}

	if !bytes.Contains(buf.Bytes(), []byte(`"repairs_per_sentence"`)) {
		t.Errorf("expected repairs_per_sentence key in %s", buf.String())
	}
}
