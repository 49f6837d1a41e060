package models

import (
	"garden/config"
	"garden/db"
	"log"
)

func Init() {
	if err := db.Instance.AutoMigrate(&Garden{}, &Plant{}, &Tag{}, &PlantTag{}); err != nil {
		panic(err)
	}
	if err := SeedTags(config.DEFAULT_TAGS); err != nil {
		log.Printf("Seeding default tags failed: %v", err)
	}
}
