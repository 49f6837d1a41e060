package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

const formatParam = "format"

var (
	// Predefined errors
	OKResponse       = Response{}
	NotFoundResponse = Response{"not found"}
	DBError1Response = Response{"DB Error 1"}
	DBError2Response = Response{"DB Error 2"}
)

// Render outputs the HTML template, or the same data as JSON with ?format=json
func Render(c *gin.Context, status int, template string, data any) {
	if c.Query(formatParam) == "json" {
		c.JSON(status, data)
		return
	}
	c.HTML(status, template, data)
}

func GardenPath(gardenID uint64) string {
	return "/gardens/" + uint64ToString(gardenID)
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
