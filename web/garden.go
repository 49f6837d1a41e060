package web

import (
	"errors"
	"garden/handlers"
	"garden/models"
	"garden/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GardenPlant struct {
	ID   uint64   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

func GardenView(c *gin.Context) {
	id, ok := utils.StringToUInt64(c.Param("garden_id"))
	if !ok {
		c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
		return
	}
	garden, err := models.FindGarden(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, handlers.NotFoundResponse)
		return
	} else if err != nil {
		log.Printf("Loading garden %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, handlers.DBError1Response)
		return
	}
	plants := []GardenPlant{}
	for i := range garden.Plants {
		plants = append(plants, GardenPlant{
			ID:   garden.Plants[i].ID,
			Name: garden.Plants[i].Name,
			Tags: garden.Plants[i].TagNames(),
		})
	}
	handlers.Render(c, http.StatusOK, "garden_view.tmpl", gin.H{
		"id":     garden.ID,
		"name":   garden.Name,
		"plants": plants,
	})
}
