package controllers

import (
	"net/http"
	"time"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

// CampaignController handles HTTP requests for marketing campaigns.
type CampaignController struct {
	campaigns services.CampaignService
}

// NewCampaignController creates a new CampaignController.
func NewCampaignController(campaigns services.CampaignService) *CampaignController {
	return &CampaignController{campaigns: campaigns}
}

// CreateCampaign handles POST /campaigns (admin only).
func (cc *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req models.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	campaign, svcErr := cc.campaigns.CreateCampaign(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// UpdateCampaign handles PATCH /campaigns/:id (admin only).
func (cc *CampaignController) UpdateCampaign(ctx *gin.Context) {
	var req models.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	campaign, svcErr := cc.campaigns.UpdateCampaign(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// GetCampaign handles GET /campaigns/:id (admin only).
func (cc *CampaignController) GetCampaign(ctx *gin.Context) {
	campaign, svcErr := cc.campaigns.GetCampaign(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// ListCampaigns handles GET /campaigns (admin only). ?active=true returns
// only campaigns currently in their active window.
func (cc *CampaignController) ListCampaigns(ctx *gin.Context) {
	if ctx.Query("active") == "true" {
		campaigns, err := cc.campaigns.ActiveCampaigns(ctx.Request.Context(), time.Now())
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list campaigns"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
		return
	}

	campaigns, svcErr := cc.campaigns.ListCampaigns(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// DeleteCampaign handles DELETE /campaigns/:id (admin only).
func (cc *CampaignController) DeleteCampaign(ctx *gin.Context) {
	if svcErr := cc.campaigns.DeleteCampaign(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}
