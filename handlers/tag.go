package handlers

import (
	"garden/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func TagList(c *gin.Context) {
	tags, err := models.ListTags()
	if err != nil {
		log.Printf("Listing tags: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, tags)
}
