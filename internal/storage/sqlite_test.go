package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{Player: "ann", Difficulty: "easy", Score: 300, Badge: "Novice"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300 after reopen, got %d", high)
	}
}

func TestStoreSaveAndTopRounds(t *testing.T) {
	store := openTestStore(t)

	records := []RoundRecord{
		{Player: "ann", Difficulty: "medium", Score: 100, Correct: 1, Badge: "Novice"},
		{Player: "bob", Difficulty: "medium", Score: 2500, Correct: 25, Wrong: 5, Accuracy: 25.0 / 30, Badge: "Hero"},
		{Player: "ann", Difficulty: "medium", Score: 50, Correct: 1, Wrong: 1, Accuracy: 0.5, Badge: "Novice"},
		{Player: "cid", Difficulty: "hard", Score: 5200, Correct: 52, Accuracy: 1, Badge: "Legend"},
	}
	for _, r := range records {
		id, err := store.SaveRound(r)
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	top, err := store.TopRounds("medium", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 medium rounds, got %d", len(top))
	}
	wantScores := []int{2500, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Player != "bob" || top[0].Badge != "Hero" || top[0].Wrong != 5 {
		t.Errorf("Unexpected top record: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	all, err := store.TopRounds("", 2)
	if err != nil {
		t.Fatalf("TopRounds(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].Score != 5200 {
		t.Errorf("Unexpected overall top rounds: %+v", all)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, score := range []int{100, 700, 300} {
		if _, err := store.SaveRound(RoundRecord{Difficulty: "easy", Score: score, Badge: "Novice"}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(RoundRecord{Difficulty: "hard", Score: 900, Badge: "Novice"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	if high, _ := store.HighScore("easy"); high != 700 {
		t.Errorf("Expected easy high score 700, got %d", high)
	}
	if high, _ := store.HighScore(""); high != 900 {
		t.Errorf("Expected overall high score 900, got %d", high)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{10, 20, 30} {
		player := "ann"
		if i == 1 {
			player = "bob"
		}
		if _, err := store.SaveRound(RoundRecord{Player: player, Difficulty: "easy", Score: score, Badge: "Novice"}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds("ann", 5)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 10 {
		t.Errorf("Unexpected recent rounds: %+v", recent)
	}
}

func TestStoreBadgeCounts(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RoundRecord{
		{Player: "ann", Difficulty: "easy", Badge: "Novice"},
		{Player: "ann", Difficulty: "hard", Badge: "Legend"},
		{Player: "ann", Difficulty: "hard", Badge: "Legend"},
		{Player: "bob", Difficulty: "easy", Badge: "Hero"},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	counts, err := store.BadgeCounts("ann")
	if err != nil {
		t.Fatalf("BadgeCounts() failed: %v", err)
	}
	if counts["Legend"] != 2 || counts["Novice"] != 1 || counts["Hero"] != 0 {
		t.Errorf("Unexpected badge counts for ann: %v", counts)
	}

	all, err := store.BadgeCounts("")
	if err != nil {
		t.Fatalf("BadgeCounts(all) failed: %v", err)
	}
	if all["Hero"] != 1 {
		t.Errorf("Unexpected overall badge counts: %v", all)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("medium")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", empty)
	}

	for _, r := range []RoundRecord{
		{Difficulty: "medium", Score: 100, Accuracy: 1, Badge: "Novice"},
		{Difficulty: "medium", Score: 300, Accuracy: 0.5, Badge: "Novice"},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	stats, err := store.GetStats("medium")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.AvgAccuracy != 0.75 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []string{"easy", "easy", "hard"} {
		if _, err := store.SaveRound(RoundRecord{Difficulty: d, Score: 10, Badge: "Novice"}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	if err := store.ClearRounds("easy"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}
	if easy, _ := store.TopRounds("easy", 10); len(easy) != 0 {
		t.Errorf("Expected no easy rounds after clear, got %d", len(easy))
	}
	if hard, _ := store.TopRounds("hard", 10); len(hard) != 1 {
		t.Errorf("Expected hard rounds to survive, got %d", len(hard))
	}
}
