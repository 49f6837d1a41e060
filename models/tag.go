package models

import (
	"garden/db"
	"garden/utils"

	"gorm.io/gorm"
)

type Tag struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"-"`
	Name      string `gorm:"type:varchar(250);index:uniq_name,unique" json:"name"`
}

// FindTagsByIDs returns the tags matching the submitted ids. Blank, malformed and unknown ids are dropped,
// each tag is returned once even if its id was submitted multiple times.
func FindTagsByIDs(tx *gorm.DB, rawIDs []string) (tags []Tag, err error) {
	tags = []Tag{}
	ids := utils.StringsToUInt64s(rawIDs)
	if len(ids) == 0 {
		return
	}
	err = tx.Where("id IN ?", ids).Order("id ASC").Find(&tags).Error
	return
}

func ListTags() (tags []Tag, err error) {
	tags = []Tag{}
	err = db.Instance.Order("name ASC").Find(&tags).Error
	return
}

// SeedTags creates any of the given tags that don't exist yet
func SeedTags(names []string) error {
	for _, name := range names {
		tag := Tag{}
		if err := db.Instance.Where(Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
	}
	return nil
}
