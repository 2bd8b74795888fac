package entities

// PlantTemplate is read-only reference data used to prefill plant creation
// forms. Seeded at bootstrap.
type PlantTemplate struct {
	TemplateID     uint   `gorm:"primaryKey" json:"template_id"`
	Name           string `json:"name"`
	Strain         string `json:"strain"`
	PlantType      string `json:"plant_type"`
	Breeder        string `json:"breeder"`
	FloweringWeeks int    `json:"flowering_weeks"`
}
