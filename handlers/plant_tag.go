package handlers

import (
	"errors"
	"garden/db"
	"garden/models"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	plantTagFormTemplate = "plant_tags_new.tmpl"
	tagIDField           = "tag_id"

	NoTagSelectedMessage = "Please select at least one tag"
	ErrorOccurredMessage = "An error occurred"
)

// PlantTagRequest holds the multi-select values, blanks included (hidden input of the select)
type PlantTagRequest struct {
	TagIDs []string `form:"tag_id"`
}

type PlantInfo struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	GardenID uint64 `json:"garden_id"`
}

type PlantTagForm struct {
	Plant    PlantInfo         `json:"plant"`
	Tags     []models.Tag      `json:"tags"`     // available options
	Selected []uint64          `json:"selected"` // always empty, the form is never pre-filled
	Errors   map[string]string `json:"errors"`
	Action   string            `json:"action"`
}

func newPlantTagForm(plant *models.Plant) (form PlantTagForm, err error) {
	form = PlantTagForm{
		Plant: PlantInfo{
			ID:       plant.ID,
			Name:     plant.Name,
			GardenID: plant.GardenID,
		},
		Selected: []uint64{},
		Errors:   map[string]string{},
		Action:   "/plants/" + uint64ToString(plant.ID) + "/plant_tags",
	}
	form.Tags, err = models.ListTags()
	return
}

func renderPlantTagForm(c *gin.Context, status int, plant *models.Plant, errorMessage string) {
	form, err := newPlantTagForm(plant)
	if err != nil {
		log.Printf("Loading tags: %v", err)
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	if errorMessage != "" {
		form.Errors[tagIDField] = errorMessage
	}
	Render(c, status, plantTagFormTemplate, form)
}

func PlantTagNew(c *gin.Context, plant *models.Plant) {
	renderPlantTagForm(c, http.StatusOK, plant, "")
}

func PlantTagCreate(c *gin.Context, plant *models.Plant) {
	r := PlantTagRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	tags, err := models.FindTagsByIDs(db.Instance, r.TagIDs)
	if err != nil {
		log.Printf("Loading tags %v: %v", r.TagIDs, err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err = models.AttachTags(db.Instance, plant, tags); err != nil {
		message := ErrorOccurredMessage
		if errors.Is(err, models.ErrNoTagSelected) {
			message = NoTagSelectedMessage
		} else {
			log.Printf("Attaching tags to plant %d: %v", plant.ID, err)
		}
		renderPlantTagForm(c, http.StatusUnprocessableEntity, plant, message)
		return
	}
	c.Redirect(http.StatusFound, GardenPath(plant.GardenID))
}

func uint64ToString(i uint64) string {
	return strconv.FormatUint(i, 10)
}
