package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"freelance-job-tracker/internal/job/model"
	"freelance-job-tracker/internal/job/service"
	"freelance-job-tracker/internal/middleware"
	appErrors "freelance-job-tracker/pkg/errors"
	"freelance-job-tracker/pkg/utils"
)

type JobHandler struct {
	service *service.JobService
}

func NewHandler(service *service.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Jobs are nested under their owning account.
func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/accounts/:accountId/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("", h.List)
		jobs.GET("/:jobId", h.Get)
		jobs.PATCH("/:jobId", h.Update)
		jobs.DELETE("/:jobId", h.Delete)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}

	var request model.CreateJobRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.service.Create(c.Request.Context(), accountID, userID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Job created successfully", job)
}

func (h *JobHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}

	jobs, err := h.service.List(c.Request.Context(), accountID, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	jobID, ok := parseID(c, "jobId")
	if !ok {
		return
	}

	job, err := h.service.Get(c.Request.Context(), jobID, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	jobID, ok := parseID(c, "jobId")
	if !ok {
		return
	}

	var request model.UpdateJobRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.service.Update(c.Request.Context(), jobID, userID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job updated successfully", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	jobID, ok := parseID(c, "jobId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), jobID, userID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job deleted successfully", nil)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrJobNotFound),
		errors.Is(err, appErrors.ErrAccountNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case appErrors.IsValidation(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
