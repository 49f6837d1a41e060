package loader

import (
	"errors"
	"garden/models"
	"garden/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const PlantIDParam = "plant_id"

// Plant is loaded from the :plant_id path parameter and exists
type PlantHandlerFunc func(c *gin.Context, plant *models.Plant)

// Router is a wrapper class that resolves the plant before calling the handler
type Router struct {
	Base gin.IRouter
}

func (pr *Router) baseExec(c *gin.Context, handler PlantHandlerFunc) {
	id, ok := utils.StringToUInt64(c.Param(PlantIDParam))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
		return
	}
	plant, err := models.FindPlant(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
		return
	} else if err != nil {
		log.Printf("Loading plant %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error 1"})
		return
	}
	handler(c, &plant)
}

func (pr *Router) POST(path string, handler PlantHandlerFunc) {
	pr.Base.POST(path, func(c *gin.Context) {
		pr.baseExec(c, handler)
	})
}

func (pr *Router) GET(path string, handler PlantHandlerFunc) {
	pr.Base.GET(path, func(c *gin.Context) {
		pr.baseExec(c, handler)
	})
}
