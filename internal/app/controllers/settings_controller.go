package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/forms"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
)

// SettingsController handles the site settings singleton
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func toSettingsResponse(s *models.SiteSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		SiteTitle:       s.SiteTitle,
		SiteDescription: s.SiteDescription,
		FooterText:      s.FooterText,
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

// GetSettings retrieves the site settings
// @Summary Get site settings
// @Description Returns the site settings, creating defaults on first read
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SettingsResponse} "Settings retrieved successfully"
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.Get(ctx)
	if settings == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(toSettingsResponse(settings), err))
}

// UpdateSettings handles site settings updates
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} dto.APIResponse "Settings updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settings data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	current, err := c.settingsService.Get(ctx)
	if err != nil && current == nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form := forms.LoadSettingsForm(current)
	form.SiteTitle = req.SiteTitle
	form.SiteDescription = req.SiteDescription
	form.FooterText = req.FooterText
	if err := form.Submit(ctx, c.settingsService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Settings updated"))
}
