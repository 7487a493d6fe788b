package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/forms"
	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
)

// ResearchController handles research project operations
type ResearchController struct {
	researchService *services.ResearchService
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchService *services.ResearchService) *ResearchController {
	return &ResearchController{
		researchService: researchService,
	}
}

func toResearchResponse(p *models.ResearchProject) dto.ResearchProjectResponse {
	return dto.ResearchProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Status:        string(p.Status),
		CoverImageURL: p.CoverImageURL,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

// ListProjects retrieves research projects
// @Summary List research projects
// @Description Retrieves research projects, optionally filtered by status and category, or searched by q
// @Tags research
// @Produce json
// @Param status query string false "Filter by status" Enums(active, completed, on-hold)
// @Param category query string false "Filter by category"
// @Param q query string false "Case-insensitive search over title and description"
// @Success 200 {object} dto.APIResponse{data=dto.ResearchProjectListResponse} "Projects retrieved successfully"
// @Router /research [get]
func (c *ResearchController) ListProjects(ctx *gin.Context) {
	var (
		projects []*models.ResearchProject
		err      error
	)

	if q := ctx.Query("q"); q != "" {
		projects, err = c.researchService.Search(ctx, q)
	} else {
		var filter repositories.ResearchFilter
		if status := ctx.Query("status"); status != "" {
			s := models.ProjectStatus(status)
			if !s.IsValid() {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status filter")
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
				return
			}
			filter.Status = &s
		}
		if category := ctx.Query("category"); category != "" {
			filter.Category = &category
		}
		projects, err = c.researchService.List(ctx, filter)
	}
	if projects == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.ResearchProjectListResponse{Projects: make([]dto.ResearchProjectResponse, 0, len(projects))}
	for _, p := range projects {
		list.Projects = append(list.Projects, toResearchResponse(p))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(list, err))
}

// GetProject retrieves a research project by ID
// @Summary Get research project details
// @Tags research
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResearchProjectResponse} "Project retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /research/{id} [get]
func (c *ResearchController) GetProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	project, err := c.researchService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toResearchResponse(project), Timestamp: time.Now()})
}

// CreateProject handles research project creation
// @Summary Create a new research project
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResearchProjectRequest true "Project data"
// @Success 201 {object} dto.APIResponse "Project created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/research [post]
func (c *ResearchController) CreateProject(ctx *gin.Context) {
	var req dto.ResearchProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form := forms.NewResearchForm()
	applyResearchRequest(form, &req)
	if err := form.Submit(ctx, c.researchService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Project created"))
}

// UpdateProject handles research project updates
// @Summary Update a research project
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.ResearchProjectRequest true "Project data"
// @Success 200 {object} dto.APIResponse "Project updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /admin/research/{id} [put]
func (c *ResearchController) UpdateProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ResearchProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	existing, err := c.researchService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form := forms.NewResearchForm()
	form.Load(existing)
	applyResearchRequest(form, &req)
	if err := form.Submit(ctx, c.researchService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Project updated"))
}

// DeleteProject handles research project deletion
// @Summary Delete a research project
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "Project deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/research/{id} [delete]
func (c *ResearchController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.researchService.Delete(ctx, id)
	})
}

func applyResearchRequest(form *forms.ResearchForm, req *dto.ResearchProjectRequest) {
	form.Title = req.Title
	form.Description = req.Description
	form.Category = req.Category
	form.Status = req.Status
	form.CoverImageURL = ""
	if req.CoverImageURL != nil {
		form.SetCoverImageURL(*req.CoverImageURL)
	}
}
