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

// TeachingController handles courses, materials and uploads
type TeachingController struct {
	teachingService *services.TeachingService
}

// NewTeachingController creates a new TeachingController
func NewTeachingController(teachingService *services.TeachingService) *TeachingController {
	return &TeachingController{
		teachingService: teachingService,
	}
}

func toCourseResponse(c *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Code:          c.Code,
		Description:   c.Description,
		Semester:      string(c.Semester),
		Year:          c.Year,
		Status:        string(c.Status),
		CoverImageURL: c.CoverImageURL,
		Highlights:    c.Highlights,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

func toMaterialResponse(m *models.CourseMaterial) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		Type:        string(m.Type),
		FilePath:    m.FilePath,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// ListCourses retrieves courses
// @Summary List courses
// @Description Retrieves courses ordered by code, optionally filtered by status
// @Tags teaching
// @Produce json
// @Param status query string false "Filter by status" Enums(active, archived, upcoming)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *TeachingController) ListCourses(ctx *gin.Context) {
	var filter repositories.CourseFilter
	if status := ctx.Query("status"); status != "" {
		s := models.CourseStatus(status)
		if !s.IsValid() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Status = &s
	}

	courses, err := c.teachingService.ListCourses(ctx, filter)
	if courses == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		list.Courses = append(list.Courses, toCourseResponse(course))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(list, err))
}

// GetCourse retrieves a course by ID
// @Summary Get course details
// @Tags teaching
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *TeachingController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.teachingService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toCourseResponse(course), Timestamp: time.Now()})
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags teaching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse "Course created successfully"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /admin/courses [post]
func (c *TeachingController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form := forms.NewCourseForm()
	applyCourseRequest(form, &req)
	if err := form.Submit(ctx, c.teachingService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Course created"))
}

// UpdateCourse handles course updates
// @Summary Update a course
// @Tags teaching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse "Course updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [put]
func (c *TeachingController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	existing, err := c.teachingService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form := forms.NewCourseForm()
	form.Load(existing)
	applyCourseRequest(form, &req)
	if err := form.Submit(ctx, c.teachingService); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course updated"))
}

// DeleteCourse handles course deletion
// @Summary Delete a course
// @Description Deletes a course and its materials. Requires confirm=true.
// @Tags teaching
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "Course deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/courses/{id} [delete]
func (c *TeachingController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.teachingService.DeleteCourse(ctx, id)
	})
}

// ListMaterials retrieves the materials of a course
// @Summary List course materials
// @Tags teaching
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse} "Materials retrieved successfully"
// @Router /courses/{id}/materials [get]
func (c *TeachingController) ListMaterials(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	materials, err := c.teachingService.ListMaterials(ctx, courseID)
	if materials == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.MaterialListResponse{Materials: make([]dto.MaterialResponse, 0, len(materials))}
	for _, m := range materials {
		list.Materials = append(list.Materials, toMaterialResponse(m))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(list, err))
}

// UploadMaterial handles a material upload
// @Summary Upload a course material
// @Description Validates, stores the file and records the material. The extension must match the declared type.
// @Tags teaching
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param title formData string true "Material title"
// @Param type formData string true "Material type" Enums(pdf, syllabus, assignment, exam, video, other)
// @Param description formData string false "Material description"
// @Param file formData file true "The file to upload"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialResponse} "Material uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid upload"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id}/materials [post]
func (c *TeachingController) UploadMaterial(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid material data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	material := &models.CourseMaterial{
		CourseID:    courseID,
		Title:       req.Title,
		Type:        models.MaterialType(req.Type),
		Description: req.Description,
	}
	id, err := c.teachingService.UploadMaterial(ctx, material, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	material.ID = id
	material.CreatedAt = time.Now()
	ctx.JSON(http.StatusCreated, dto.APIResponse{Success: true, Data: toMaterialResponse(material), Timestamp: time.Now()})
}

// DeleteMaterial handles material deletion
// @Summary Delete a course material
// @Description Removes the material record, then removes the stored file best-effort. Requires confirm=true.
// @Tags teaching
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "Material deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/materials/{id} [delete]
func (c *TeachingController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.teachingService.DeleteMaterial(ctx, id)
	})
}

// UploadCoverImage handles a cover image upload
// @Summary Upload a cover image
// @Description Validates and stores an image, returning its public URL for use in an editor form
// @Tags teaching
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "The image to upload (max 5 MB)"
// @Success 201 {object} dto.APIResponse "Image uploaded, URL in data"
// @Failure 400 {object} dto.ErrorResponse "Unsupported image format"
// @Failure 413 {object} dto.ErrorResponse "Image too large"
// @Router /admin/uploads/images [post]
func (c *TeachingController) UploadCoverImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.teachingService.UploadCoverImage(ctx, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"url": url}, "Image uploaded"))
}

func applyCourseRequest(form *forms.CourseForm, req *dto.CourseRequest) {
	form.Title = req.Title
	form.Code = req.Code
	form.Description = req.Description
	form.Semester = req.Semester
	form.Year = req.Year
	form.Status = req.Status
	form.Highlights = req.Highlights
	form.CoverImageURL = ""
	if req.CoverImageURL != nil {
		form.SetCoverImageURL(*req.CoverImageURL)
	}
}
