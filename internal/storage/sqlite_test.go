package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesPlayed != 0 || empty.HighScore != 0 {
		t.Errorf("Stats() = %+v, expected zero values", empty)
	}

	games, err := store.TopGames(5)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("TopGames() returned %d entries, expected 0", len(games))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordGame(100, 1); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	st, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesPlayed != 0 {
		t.Errorf("second session sees %d games, expected 0", st.GamesPlayed)
	}
}

func TestRecordAndTopGames(t *testing.T) {
	store := openTestStore(t)

	results := []struct{ score, level int }{
		{100, 1},
		{450, 3},
		{50, 1},
		{450, 4},
		{200, 2},
	}
	for _, r := range results {
		if _, err := store.RecordGame(r.score, r.level); err != nil {
			t.Fatalf("RecordGame(%d, %d) failed: %v", r.score, r.level, err)
		}
	}

	games, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("TopGames(3) returned %d entries, expected 3", len(games))
	}

	expected := []struct{ score, level int }{{450, 4}, {450, 3}, {200, 2}}
	for i, e := range expected {
		if games[i].Score != e.score || games[i].Level != e.level {
			t.Errorf("TopGames()[%d] = %d/%d, expected %d/%d", i, games[i].Score, games[i].Level, e.score, e.level)
		}
	}

	if games[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
	if time.Since(games[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", games[0].CreatedAt)
	}
}

func TestTopGamesDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.RecordGame(i*10, 1); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(0)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 10 {
		t.Errorf("TopGames(0) returned %d entries, expected 10", len(games))
	}
}

func TestHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame(100, 1)
	store.RecordGame(300, 2)
	store.RecordGame(200, 5)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, expected 3", st.GamesPlayed)
	}
	if st.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", st.HighScore)
	}
	if st.BestLevel != 5 {
		t.Errorf("BestLevel = %d, expected 5", st.BestLevel)
	}
	if st.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", st.TotalScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", st.AvgScore)
	}
}

func TestRecordGameRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordGame(-1, 1); err == nil {
		t.Error("RecordGame(-1, 1) should fail")
	}
	if _, err := store.RecordGame(10, 0); err == nil {
		t.Error("RecordGame(10, 0) should fail")
	}
}
