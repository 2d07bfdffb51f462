package snapshot

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/petalgen/petal/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := OpenDB(db, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	return store
}

func TestRecordPageFirstRun(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	runID, err := store.StartRun("mothers-day", now)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if runID == "" {
		t.Fatal("StartRun returned empty id")
	}

	change, err := store.RecordPage(runID, "london/index.html", "<html>v1</html>")
	if err != nil {
		t.Fatalf("RecordPage: %v", err)
	}
	if change.Changed {
		t.Error("first snapshot of a page should not report a change")
	}

	if err := store.FinishRun(runID, 1); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
}

func TestRecordPageUnchanged(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	run1, _ := store.StartRun("mothers-day", now)
	if _, err := store.RecordPage(run1, "london/index.html", "<html>same</html>"); err != nil {
		t.Fatal(err)
	}

	run2, _ := store.StartRun("mothers-day", now.Add(time.Hour))
	change, err := store.RecordPage(run2, "london/index.html", "<html>same</html>")
	if err != nil {
		t.Fatal(err)
	}
	if change.Changed {
		t.Error("identical content should not report a change")
	}
}

func TestRecordPageChanged(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	run1, _ := store.StartRun("mothers-day", now)
	if _, err := store.RecordPage(run1, "london/index.html", "<html>old content</html>"); err != nil {
		t.Fatal(err)
	}

	run2, _ := store.StartRun("mothers-day", now.Add(time.Hour))
	change, err := store.RecordPage(run2, "london/index.html", "<html>new and longer content</html>")
	if err != nil {
		t.Fatal(err)
	}
	if !change.Changed {
		t.Fatal("different content should report a change")
	}
	if change.AddedChars == 0 {
		t.Error("expected added characters in the summary")
	}
}

func TestRecordPageDistinctPaths(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	run1, _ := store.StartRun("mothers-day", now)
	if _, err := store.RecordPage(run1, "london/index.html", "london"); err != nil {
		t.Fatal(err)
	}

	run2, _ := store.StartRun("mothers-day", now.Add(time.Hour))
	change, err := store.RecordPage(run2, "leeds/index.html", "leeds")
	if err != nil {
		t.Fatal(err)
	}
	if change.Changed {
		t.Error("a path seen for the first time should not diff against another path")
	}
}

func TestDiffSummary(t *testing.T) {
	added, removed := diffSummary("abc", "abXYc")
	if added == 0 || removed != 0 {
		t.Errorf("diffSummary = (%d, %d), want insertions only", added, removed)
	}

	added, removed = diffSummary("hello world", "hello")
	if removed == 0 {
		t.Errorf("diffSummary = (%d, %d), want deletions", added, removed)
	}
}
