package controllers

import (
	"net/http"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

// ContentController handles HTTP requests for storefront content.
type ContentController struct {
	content services.ContentService
}

// NewContentController creates a new ContentController.
func NewContentController(content services.ContentService) *ContentController {
	return &ContentController{content: content}
}

// ListSlides handles GET /content/slides.
func (cc *ContentController) ListSlides(ctx *gin.Context) {
	slides, svcErr := cc.content.ListSlides(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"slides": slides})
}

// SaveSlide handles PUT /content/slides (admin only).
func (cc *ContentController) SaveSlide(ctx *gin.Context) {
	var slide models.HeroSlide
	if err := ctx.ShouldBindJSON(&slide); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	saved, svcErr := cc.content.SaveSlide(ctx.Request.Context(), &slide)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"slide": saved})
}

// DeleteSlide handles DELETE /content/slides/:id (admin only).
func (cc *ContentController) DeleteSlide(ctx *gin.Context) {
	if svcErr := cc.content.DeleteSlide(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
}

// GetSiteConfig handles GET /content/site-config.
func (cc *ContentController) GetSiteConfig(ctx *gin.Context) {
	cfg, svcErr := cc.content.GetSiteConfig(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"site_config": cfg})
}

// SetSiteConfig handles PUT /content/site-config (admin only).
func (cc *ContentController) SetSiteConfig(ctx *gin.Context) {
	var cfg models.SiteConfig
	if err := ctx.ShouldBindJSON(&cfg); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := cc.content.SetSiteConfig(ctx.Request.Context(), &cfg); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Site config saved"})
}
