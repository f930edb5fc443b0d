package console

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestHistoryLoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := h.Load(); err != nil {
		t.Fatalf("Load of missing file should not error, got %v", err)
	}
	if len(h.Lines()) != 0 {
		t.Errorf("expected no lines, got %d", len(h.Lines()))
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	h.Append("01 02")
	h.Append("   ") // blank lines are not recorded
	h.Append("exit")
	if err := h.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"01 02", "exit"}
	got := reloaded.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	for i := 0; i < historyLimit+100; i++ {
		h.Append(fmt.Sprintf("line-%d", i))
	}
	if err := h.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := reloaded.Lines()
	if len(got) != historyLimit {
		t.Fatalf("got %d lines, want %d", len(got), historyLimit)
	}
	// The last entries are the ones kept
	if got[0] != "line-100" {
		t.Errorf("first line = %q, want %q", got[0], "line-100")
	}
	if got[len(got)-1] != fmt.Sprintf("line-%d", historyLimit+99) {
		t.Errorf("last line = %q, want %q", got[len(got)-1], fmt.Sprintf("line-%d", historyLimit+99))
	}
}
