package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/forms"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
)

// PublicationController handles publication-related operations
type PublicationController struct {
	publicationService *services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationService *services.PublicationService) *PublicationController {
	return &PublicationController{
		publicationService: publicationService,
	}
}

func toPublicationResponse(p *models.Publication) dto.PublicationResponse {
	return dto.PublicationResponse{
		ID:            p.ID,
		Title:         p.Title,
		Authors:       p.Authors,
		AuthorsText:   repositories.JoinAuthors(p.Authors),
		Venue:         p.Venue,
		Date:          p.Date,
		DOI:           p.DOI,
		Abstract:      p.Abstract,
		PDFURL:        p.PDFURL,
		CoverImageURL: p.CoverImageURL,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// confirmedDelete runs del through a confirmation gate armed from the
// request's confirm flag. Deletes without confirm=true never reach the
// service.
func confirmedDelete(ctx *gin.Context, del func() error) {
	var gate forms.DeleteGate
	if ctx.Query("confirm") == "true" {
		gate.Confirm()
	}
	err := gate.Run(ctx, func(_ context.Context) error {
		return del()
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Deleted"))
}

// ListPublications retrieves all publications
// @Summary List publications
// @Description Retrieves all publications, newest first, optionally filtered by a search query and year
// @Tags publications
// @Produce json
// @Param q query string false "Case-insensitive search over title, authors and venue"
// @Param year query string false "Exact publication year"
// @Success 200 {object} dto.APIResponse{data=dto.PublicationListResponse} "Publications retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications [get]
func (c *PublicationController) ListPublications(ctx *gin.Context) {
	var publications []*models.Publication
	var err error

	query := ctx.Query("q")
	year := ctx.Query("year")
	if query != "" || year != "" {
		publications, err = c.publicationService.Search(ctx, query, year)
	} else {
		publications, err = c.publicationService.List(ctx)
	}
	if publications == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.PublicationListResponse{Publications: make([]dto.PublicationResponse, 0, len(publications))}
	for _, p := range publications {
		list.Publications = append(list.Publications, toPublicationResponse(p))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(list, err))
}

// GetPublication retrieves a publication by ID
// @Summary Get publication details
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PublicationResponse} "Publication retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /publications/{id} [get]
func (c *PublicationController) GetPublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	publication, err := c.publicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toPublicationResponse(publication), Timestamp: time.Now()})
}

// CreatePublication handles publication creation
// @Summary Create a new publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PublicationRequest true "Publication data"
// @Success 201 {object} dto.APIResponse "Publication created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/publications [post]
func (c *PublicationController) CreatePublication(ctx *gin.Context) {
	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid publication data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form := publicationFormFromRequest(&req)
	if err := form.Submit(ctx, c.publicationService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Publication created"))
}

// UpdatePublication handles publication updates
// @Summary Update a publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Param request body dto.PublicationRequest true "Publication data"
// @Success 200 {object} dto.APIResponse "Publication updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /admin/publications/{id} [put]
func (c *PublicationController) UpdatePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid publication data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	existing, err := c.publicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form := forms.NewPublicationForm()
	form.Load(existing)
	applyPublicationRequest(form, &req)
	if err := form.Submit(ctx, c.publicationService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Publication updated"))
}

// DeletePublication handles publication deletion
// @Summary Delete a publication
// @Description Deletes a publication. Requires confirm=true; unconfirmed deletes are refused.
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "Publication deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/publications/{id} [delete]
func (c *PublicationController) DeletePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.publicationService.Delete(ctx, id)
	})
}

func publicationFormFromRequest(req *dto.PublicationRequest) *forms.PublicationForm {
	form := forms.NewPublicationForm()
	applyPublicationRequest(form, req)
	return form
}

func applyPublicationRequest(form *forms.PublicationForm, req *dto.PublicationRequest) {
	form.Title = req.Title
	form.Authors = req.Authors
	form.Venue = req.Venue
	form.Date = req.Date
	form.Abstract = req.Abstract
	form.DOI = ""
	if req.DOI != nil {
		form.DOI = *req.DOI
	}
	form.PDFURL = ""
	if req.PDFURL != nil {
		form.PDFURL = *req.PDFURL
	}
	form.CoverImageURL = ""
	if req.CoverImageURL != nil {
		form.SetCoverImageURL(*req.CoverImageURL)
	}
}
