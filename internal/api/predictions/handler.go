package predictions

import (
	"errors"
	"net/http"

	"github.com/Brysonmah/elitetips-2025/database"
	"github.com/Brysonmah/elitetips-2025/internal/domain/predictions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadAll() ([]predictions.Prediction, error) {
	var list []predictions.Prediction
	err := database.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

// List returns today's predictions. The entitlement guard has already run;
// whoever gets here may read.
func List(c *gin.Context) {
	list, err := loadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": list})
}

// Create adds a prediction. An empty match or tip never reaches the store.
// The response carries the reloaded list so the admin view can rerender
// without a second round trip.
func Create(c *gin.Context) {
	var draft predictions.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := draft.ValidateNew(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	p := predictions.Prediction{
		Match: *draft.Match,
		Tip:   *draft.Tip,
	}
	if draft.Confidence != nil {
		p.Confidence = *draft.Confidence
	}

	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save prediction"})
		return
	}

	list, err := loadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prediction": p, "predictions": list})
}

// Update writes only the supplied fields of an existing prediction; the id
// itself is immutable.
func Update(c *gin.Context) {
	id := c.Param("id")

	var draft predictions.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := draft.ValidateUpdate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var existing predictions.Prediction
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load prediction"})
		return
	}

	changes := draft.Changes()
	if len(changes) > 0 {
		if err := database.DB.Model(&existing).Updates(changes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prediction"})
			return
		}
	}

	list, err := loadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": list})
}

// Delete removes a prediction immediately. No confirmation, no soft delete.
func Delete(c *gin.Context) {
	id := c.Param("id")

	if err := database.DB.Delete(&predictions.Prediction{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prediction"})
		return
	}

	list, err := loadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": list})
}
