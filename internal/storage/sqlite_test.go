package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saved := []MatchRecord{
		{ScoreA: 3, ScoreB: 5, Ticks: 1200, Seed: 42, DurationSecs: 40},
		{ScoreA: 7, ScoreB: 2, Ticks: 900, Seed: 43, DurationSecs: 30},
		{ScoreA: 0, ScoreB: 1, Ticks: 100, Seed: 44, DurationSecs: 4},
	}
	for _, rec := range saved {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	records, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Newest first
	if records[0].Seed != 44 || records[2].Seed != 42 {
		t.Errorf("Records not in recency order: %+v", records)
	}

	// Field round trip
	got := records[2]
	if got.ScoreA != 3 || got.ScoreB != 5 || got.Ticks != 1200 || got.DurationSecs != 40 {
		t.Errorf("Record fields lost: %+v", got)
	}
	if got.ID == 0 {
		t.Error("Record ID not assigned")
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchRecord{ScoreA: i, ScoreB: 0, Ticks: uint64(i), Seed: int64(i)})
	}

	records, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 records with limit, got %d", len(records))
	}

	// Non-positive limit falls back to the default
	records, err = store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches(0) failed: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("Expected all 5 records with default limit, got %d", len(records))
	}
}

func TestStoreTotalStats(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database aggregates to zeros
	totals, err := store.TotalStats()
	if err != nil {
		t.Fatalf("TotalStats() failed: %v", err)
	}
	if totals.Matches != 0 || totals.PointsA != 0 || totals.PointsB != 0 {
		t.Errorf("Expected zero totals on empty store, got %+v", totals)
	}

	store.SaveMatch(MatchRecord{ScoreA: 3, ScoreB: 5, Ticks: 1000, Seed: 1})
	store.SaveMatch(MatchRecord{ScoreA: 7, ScoreB: 2, Ticks: 500, Seed: 2})

	totals, err = store.TotalStats()
	if err != nil {
		t.Fatalf("TotalStats() failed: %v", err)
	}
	if totals.Matches != 2 || totals.PointsA != 10 || totals.PointsB != 7 || totals.Ticks != 1500 {
		t.Errorf("Wrong totals: %+v", totals)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
