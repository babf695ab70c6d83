package main

import (
	"path/filepath"
	"testing"
)

func TestPoolOpenOnce(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "out.db")

	var p Pool
	first, err := p.Open(db)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	second, err := p.Open(db)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}

	if first != second {
		t.Error("expected the same pool for the same path")
	}

	if _, err := p.Open(filepath.Join(dir, "other.db")); err == nil {
		t.Error("expected error for a second database")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
