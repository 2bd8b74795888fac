package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"growlog/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Grow{},
		&entities.Environment{},
		&entities.EnvironmentMetric{},
		&entities.Plant{},
		&entities.PlantMetric{},
		&entities.PlantLog{},
		&entities.PlantPhoto{},
		&entities.Task{},
		&entities.Notification{},
		&entities.PlantTemplate{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := seedTemplates(db); err != nil {
		log.Fatalf("seed templates: %v", err)
	}

	return db
}

// seedTemplates fills the read-only plant template table on first boot.
func seedTemplates(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.PlantTemplate{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := []entities.PlantTemplate{
		{Name: "Northern Lights", Strain: "Northern Lights", PlantType: entities.TypePhotoperiod, Breeder: "Sensi Seeds", FloweringWeeks: 8},
		{Name: "Auto Amnesia", Strain: "Amnesia Haze Auto", PlantType: entities.TypeAutoflower, Breeder: "Royal Queen", FloweringWeeks: 10},
		{Name: "White Widow", Strain: "White Widow", PlantType: entities.TypePhotoperiod, Breeder: "Dutch Passion", FloweringWeeks: 9},
		{Name: "Auto Blueberry", Strain: "Blueberry Auto", PlantType: entities.TypeAutoflower, Breeder: "Dutch Passion", FloweringWeeks: 9},
		{Name: "Jack Herer", Strain: "Jack Herer", PlantType: entities.TypePhotoperiod, Breeder: "Sensi Seeds", FloweringWeeks: 10},
	}
	return db.Create(&seed).Error
}
