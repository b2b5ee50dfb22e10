package history_test

import (
	"path/filepath"
	"testing"

	"github.com/ageron/visual-crypto/internal/history"
)

func TestRecordAndRecent(t *testing.T) {
	log, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer log.Close()

	runs := []history.Run{
		{Message: "logo.png", Secret: "secret.png", Ciphered: "ciphered.png", Width: 100, Height: 50, SecretState: "created"},
		{Message: "banner.png", Secret: "secret.png", Ciphered: "out.png", Width: 200, Height: 80, SecretState: "enlarged"},
	}
	for _, r := range runs {
		if err := log.Record(r); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	got, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d runs, want 2", len(got))
	}
	// Newest first.
	if got[0].Message != "banner.png" || got[1].Message != "logo.png" {
		t.Errorf("Recent() order = [%s, %s], want newest first", got[0].Message, got[1].Message)
	}
	if got[0].Width != 200 || got[0].Height != 80 || got[0].SecretState != "enlarged" {
		t.Errorf("Recent()[0] = %+v, fields did not round-trip", got[0])
	}
	if got[0].Time.IsZero() {
		t.Error("Recent()[0].Time should be populated")
	}
}

func TestRecentLimit(t *testing.T) {
	log, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer log.Close()

	for i := 0; i < 5; i++ {
		if err := log.Record(history.Run{Message: "m.png", Secret: "s.png", Ciphered: "c.png", Width: 10, Height: 10, SecretState: "reused"}); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}
	got, err := log.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Recent(3) returned %d runs, want 3", len(got))
	}
}
