package models

import (
	"garden/db"

	"gorm.io/gorm"
)

type Garden struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Name      string  `gorm:"type:varchar(250)"`
	Plants    []Plant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FindGarden loads the garden with all of its plants and their tags
func FindGarden(id uint64) (garden Garden, err error) {
	err = db.Instance.
		Preload("Plants", func(tx *gorm.DB) *gorm.DB { return tx.Order("plants.name ASC") }).
		Preload("Plants.PlantTags", func(tx *gorm.DB) *gorm.DB { return tx.Order("plant_tags.tag_id ASC") }).
		Preload("Plants.PlantTags.Tag").
		First(&garden, id).Error
	return
}
