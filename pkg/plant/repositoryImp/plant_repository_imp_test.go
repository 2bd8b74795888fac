package repositoryImp_test

import (
	"path/filepath"
	"testing"
	"time"

	"growlog/database"
	"growlog/entities"
	"growlog/pkg/plant/repositoryImp"

	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
}

func TestChangePhaseWritesBothRows(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	p := &entities.Plant{
		UserID: 1, GrowID: 1, Name: "p",
		Phase: entities.PhaseVegetative, Status: entities.StatusHealthy,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed plant: %v", err)
	}

	now := time.Now()
	p.Phase = entities.PhaseFlowering
	p.PhaseStartedAt = &now
	err := repo.ChangePhase(p, &entities.PlantLog{
		PlantID:  p.PlantID,
		UserID:   p.UserID,
		Type:     entities.LogPhaseChange,
		Title:    "Phase changed",
		Content:  "VEGETATIVE -> FLOWERING",
		LoggedAt: now,
	})
	if err != nil {
		t.Fatalf("change phase: %v", err)
	}

	var got entities.Plant
	if err := db.First(&got, p.PlantID).Error; err != nil {
		t.Fatalf("reload plant: %v", err)
	}
	if got.Phase != entities.PhaseFlowering {
		t.Errorf("phase = %q, want FLOWERING", got.Phase)
	}
	if got.PhaseStartedAt == nil {
		t.Error("phase_started_at not stamped")
	}

	var logs []entities.PlantLog
	if err := db.Where("plant_id = ?", p.PlantID).Find(&logs).Error; err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want exactly one journal entry", len(logs))
	}
	if logs[0].Type != entities.LogPhaseChange || logs[0].Content != "VEGETATIVE -> FLOWERING" {
		t.Errorf("journal entry = %+v", logs[0])
	}
}

func TestDeleteCascadesJournal(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)

	p := &entities.Plant{UserID: 1, GrowID: 1, Name: "p", Status: entities.StatusHealthy}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed plant: %v", err)
	}
	h := 10.0
	for _, dep := range []any{
		&entities.PlantMetric{PlantID: p.PlantID, Height: &h, RecordedAt: time.Now()},
		&entities.PlantLog{PlantID: p.PlantID, UserID: 1, Type: entities.LogNote, LoggedAt: time.Now()},
		&entities.PlantPhoto{PlantID: p.PlantID, UserID: 1, FilePath: "/uploads/x.jpg"},
	} {
		if err := db.Create(dep).Error; err != nil {
			t.Fatalf("seed %T: %v", dep, err)
		}
	}

	if err := repo.Delete(p.PlantID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, dep := range []any{
		&entities.Plant{}, &entities.PlantMetric{}, &entities.PlantLog{}, &entities.PlantPhoto{},
	} {
		var n int64
		db.Model(dep).Count(&n)
		if n != 0 {
			t.Errorf("%T rows left after delete: %d", dep, n)
		}
	}
}
