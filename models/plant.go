package models

import "garden/db"

type Plant struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	GardenID  uint64     `gorm:"not null;index"`
	Garden    Garden     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name      string     `gorm:"type:varchar(250)"`
	PlantTags []PlantTag `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func FindPlant(id uint64) (plant Plant, err error) {
	err = db.Instance.Preload("Garden").First(&plant, id).Error
	return
}

// TagNames returns the names of the already loaded tags, in join order
func (p *Plant) TagNames() []string {
	result := []string{}
	for _, pt := range p.PlantTags {
		result = append(result, pt.Tag.Name)
	}
	return result
}
