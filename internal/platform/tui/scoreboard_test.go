package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eyedrop-invaders/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.RoundRecord{
		{Player: "ann", Difficulty: "easy", Score: 300, Accuracy: 1, Badge: "Novice"},
		{Player: "bob", Difficulty: "hard", Score: 5100, Accuracy: 0.9, Badge: "Legend"},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "bob", 120, 30)
	if len(m.rounds) != 2 {
		t.Fatalf("All tab shows %d rounds, want 2", len(m.rounds))
	}
	if m.badges["Legend"] != 1 {
		t.Errorf("badge counts = %v", m.badges)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].Difficulty != "easy" || len(m.rounds) != 1 || m.rounds[0].Player != "ann" {
		t.Errorf("easy tab = %+v", m.rounds)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].Difficulty != "hard" {
		t.Errorf("shift+tab wrapped to %q, want hard", m.tabs[m.tabCursor].Difficulty)
	}

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Hard") || !strings.Contains(view, "Legend") {
		t.Errorf("view missing title or badge:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc did not go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard message missing")
	}
}
