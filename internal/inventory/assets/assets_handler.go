package assets

import (
	"context"
	"net/http"

	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"github.com/gin-gonic/gin"
)

type AssetLister interface {
	ListAssets(ctx context.Context) ([]models.Asset, error)
	ListAssetsByKind(ctx context.Context, kind metadata.Kind) ([]models.Asset, error)
}

type AssetHandler struct {
	repository AssetLister
}

func NewAssetHandler(r AssetLister) *AssetHandler {
	return &AssetHandler{repository: r}
}

func (h *AssetHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/assets", h.GetAssets)
}

// GetAssets lists all assets, or only one kind when ?kind= is given.
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var query FetchAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid kind", "details": err.Error()})
		return
	}

	var assets []models.Asset
	var err error

	if query.Kind != "" {
		kind, kindErr := metadata.NewKind(query.Kind)
		if kindErr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid kind", "details": kindErr.Error()})
			return
		}
		assets, err = h.repository.ListAssetsByKind(c.Request.Context(), kind)
	} else {
		assets, err = h.repository.ListAssets(c.Request.Context())
	}

	if err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Could not list assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}
