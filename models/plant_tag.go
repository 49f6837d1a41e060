package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PlantTag struct {
	CreatedAt int64
	PlantID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Plant     Plant  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TagID     uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	Tag       Tag    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeCreate makes sure both the plant and the tag exist and that the pair is not taken yet.
// It runs on the same connection as the insert, so inside a transaction it also sees rows created
// earlier in that transaction.
func (pt *PlantTag) BeforeCreate(tx *gorm.DB) error {
	if pt.PlantID == 0 || pt.TagID == 0 {
		return ErrPlantTagInvalid
	}
	query := tx.Session(&gorm.Session{NewDB: true})
	for _, ref := range []struct {
		model any
		id    uint64
	}{{&Plant{}, pt.PlantID}, {&Tag{}, pt.TagID}} {
		exists, err := rowExists(query.Model(ref.model).Where("id = ?", ref.id))
		if err != nil {
			return err
		}
		if !exists {
			return ErrPlantTagInvalid
		}
	}
	taken, err := rowExists(query.Model(&PlantTag{}).Where("plant_id = ? AND tag_id = ?", pt.PlantID, pt.TagID))
	if err != nil {
		return err
	}
	if taken {
		return ErrPlantTagTaken
	}
	return nil
}

func rowExists(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Count(&count).Error
	return count > 0, err
}

func CreatePlantTag(tx *gorm.DB, plant *Plant, tag *Tag) (PlantTag, error) {
	pt := PlantTag{
		PlantID: plant.ID,
		TagID:   tag.ID,
	}
	// Only the IDs are set, associations must not be upserted
	err := tx.Omit("Plant", "Tag").Create(&pt).Error
	if isDuplicateKeyError(err) {
		err = ErrPlantTagTaken
	} else if isForeignKeyError(err) {
		err = ErrPlantTagInvalid
	}
	return pt, err
}

// AttachTags creates one PlantTag per tag inside a single transaction. Either all of them are created
// or none: the first failure rolls back everything created so far.
func AttachTags(tx *gorm.DB, plant *Plant, tags []Tag) error {
	if len(tags) == 0 {
		return ErrNoTagSelected
	}
	return tx.Transaction(func(tx *gorm.DB) error {
		for i := range tags {
			if _, err := CreatePlantTag(tx, plant, &tags[i]); err != nil {
				return errors.Join(ErrPlantTagCreation, fmt.Errorf("tag %d: %w", tags[i].ID, err))
			}
		}
		return nil
	})
}
