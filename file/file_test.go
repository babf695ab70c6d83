package file

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func roundTrip(t *testing.T, name string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := "The dog|(e1) barked .\nShe|(e2) left .\n"

	w, err := Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != content {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestRoundTripPlain(t *testing.T) {
	roundTrip(t, "docs.txt")
}

func TestRoundTripXz(t *testing.T) {
	roundTrip(t, "docs.txt.xz")

	// the compressed file must not hold the plain text
	path := filepath.Join(t.TempDir(), "raw.xz")
	w, err := Create(path)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "plain")
	w.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) == "plain" {
		t.Errorf("expected xz compressed content")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenCorruptXz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xz")
	if err := os.WriteFile(path, []byte("not xz"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt xz file")
	}
}
