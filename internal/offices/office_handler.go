package offices

import (
	"context"
	"net/http"

	"assettracking/pkg/models"

	"github.com/gin-gonic/gin"
)

type OfficeLister interface {
	ListOffices(ctx context.Context) ([]models.Office, error)
}

type OfficeHandler struct {
	Repository OfficeLister
}

func NewOfficeHandler(r OfficeLister) *OfficeHandler {
	return &OfficeHandler{Repository: r}
}

func (h *OfficeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/offices", h.GetOffices)
}

func (h *OfficeHandler) GetOffices(c *gin.Context) {
	offices, err := h.Repository.ListOffices(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Could not list offices", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, offices)
}
