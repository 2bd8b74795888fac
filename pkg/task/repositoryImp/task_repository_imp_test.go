package repositoryImp_test

import (
	"path/filepath"
	"testing"
	"time"

	"growlog/database"
	"growlog/entities"
	"growlog/pkg/task/repositoryImp"

	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
}

func seedTask(t *testing.T, db *gorm.DB, task *entities.Task) *entities.Task {
	t.Helper()
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func TestCompleteSpawnsSuccessor(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	due := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Water plants", DueAt: due,
		RepeatRule: "WEEKLY", Priority: "HIGH", Status: entities.TaskOpen,
	})

	now := due.AddDate(0, 0, 3) // completed 3 days late
	done, next, err := repo.Complete(src.TaskID, 1, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	t.Run("original is DONE and keeps its due date", func(t *testing.T) {
		if done.Status != entities.TaskDone {
			t.Errorf("status = %q, want DONE", done.Status)
		}
		if !done.DueAt.Equal(due) {
			t.Errorf("original due mutated to %v", done.DueAt)
		}
		if done.CompletedAt == nil || !done.CompletedAt.Equal(now) {
			t.Errorf("completed_at = %v, want %v", done.CompletedAt, now)
		}
	})

	t.Run("successor is anchored to the original due date", func(t *testing.T) {
		if next == nil {
			t.Fatal("no successor spawned")
		}
		want := due.AddDate(0, 0, 7) // NOT completion time + 7
		if !next.DueAt.Equal(want) {
			t.Errorf("successor due = %v, want %v", next.DueAt, want)
		}
		if next.Status != entities.TaskOpen {
			t.Errorf("successor status = %q, want OPEN", next.Status)
		}
		if next.Title != src.Title || next.UserID != src.UserID || next.Priority != src.Priority {
			t.Errorf("successor fields differ from source: %+v", next)
		}
	})

	t.Run("exactly one successor row exists", func(t *testing.T) {
		var n int64
		db.Model(&entities.Task{}).Where("status = ?", entities.TaskOpen).Count(&n)
		if n != 1 {
			t.Errorf("open tasks = %d, want 1", n)
		}
	})
}

func TestCompleteIsIdempotent(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Defoliate", DueAt: time.Now(),
		RepeatRule: "DAILY", Status: entities.TaskOpen,
	})

	if _, _, err := repo.Complete(src.TaskID, 1, time.Now()); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	_, next, err := repo.Complete(src.TaskID, 1, time.Now())
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if next != nil {
		t.Error("second completion spawned another successor")
	}

	var n int64
	db.Model(&entities.Task{}).Count(&n)
	if n != 2 {
		t.Errorf("task rows = %d, want 2 (original + one successor)", n)
	}
}

func TestCompleteOneShotTask(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Repot", DueAt: time.Now(), Status: entities.TaskOpen,
	})
	done, next, err := repo.Complete(src.TaskID, 1, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != entities.TaskDone {
		t.Errorf("status = %q, want DONE", done.Status)
	}
	if next != nil {
		t.Error("one-shot task spawned a successor")
	}
}

func TestCompleteUnknownRuleSpawnsNothing(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Mystery", DueAt: time.Now(),
		RepeatRule: "FORTNIGHTLY", Status: entities.TaskOpen,
	})
	_, next, err := repo.Complete(src.TaskID, 1, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if next != nil {
		t.Error("unrecognized rule spawned a successor")
	}
}

func TestCompleteEnforcesOwnership(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Private", DueAt: time.Now(), Status: entities.TaskOpen,
	})
	if _, _, err := repo.Complete(src.TaskID, 2, time.Now()); err == nil {
		t.Error("completing another user's task succeeded")
	}
}

func TestCompleteNotifies(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	src := seedTask(t, db, &entities.Task{
		UserID: 1, Title: "Flush", DueAt: time.Now(),
		RepeatRule: "WEEKLY", Notify: true, Status: entities.TaskOpen,
	})
	if _, _, err := repo.Complete(src.TaskID, 1, time.Now()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	var n int64
	db.Model(&entities.Notification{}).Where("user_id = ?", 1).Count(&n)
	if n != 1 {
		t.Errorf("notifications = %d, want 1", n)
	}
}
