package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
	"github.com/taskhub/backend/internal/service"
	"github.com/taskhub/backend/internal/store"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary List tasks for the current user
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param title query string false "Filter by title substring (case-insensitive)"
// @Param completed query boolean false "Filter by completion status"
// @Success 200 {object} model.TaskListEnvelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	filter := store.TaskFilter{Title: c.Query("title")}
	if raw, ok := c.GetQuery("completed"); ok {
		// Anything other than the exact string "true" filters for pending
		// tasks; unrecognized values are not an error.
		completed := raw == "true"
		filter.Completed = &completed
	}

	tasks, err := h.svc.List(c.Request.Context(), h.owner(c), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondList(c, http.StatusOK, tasks, len(tasks), "Tasks retrieved successfully")
}

// Get godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.TaskEnvelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.svc.Get(c.Request.Context(), h.owner(c), taskID)
	if err != nil {
		writeTaskError(c, err, "Not authorized to access this task")
		return
	}

	respond(c, http.StatusOK, task, "Task retrieved successfully")
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTaskRequest true "Title and optional completed flag"
// @Success 201 {object} model.TaskEnvelope
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	task, err := h.svc.Create(c.Request.Context(), h.owner(c), req.Title, completed)
	if err != nil {
		writeTaskError(c, err, "Not authorized to access this task")
		return
	}

	respond(c, http.StatusCreated, task, "Task created successfully")
}

// Update godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body model.UpdateTaskRequest true "Fields to update (at least one)"
// @Success 200 {object} model.TaskEnvelope
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	task, err := h.svc.Update(c.Request.Context(), h.owner(c), taskID, req.Title, req.Completed)
	if err != nil {
		writeTaskError(c, err, "Not authorized to update this task")
		return
	}

	respond(c, http.StatusOK, task, "Task updated successfully")
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.TaskEnvelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.svc.Delete(c.Request.Context(), h.owner(c), taskID)
	if err != nil {
		writeTaskError(c, err, "Not authorized to delete this task")
		return
	}

	respond(c, http.StatusOK, task, "Task deleted successfully")
}

// Stats godoc
// @Summary Get task statistics for the current user
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsEnvelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/stats [get]
func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), h.owner(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// owner is uuid.Nil on unauthenticated routes, which makes the service skip
// ownership checks (the ownerless deployment mode).
func (h *TaskHandler) owner(c *gin.Context) uuid.UUID {
	if user := GetCurrentUser(c); user != nil {
		return user.ID
	}
	return uuid.Nil
}

// taskIDParam parses the :id path segment. A malformed id reads as 404, the
// same as an id that matches nothing.
func taskIDParam(c *gin.Context) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return taskID, true
}

func writeTaskError(c *gin.Context, err error, forbiddenMsg string) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, forbiddenMsg)
	case errors.Is(err, service.ErrEmptyTitle):
		respondError(c, http.StatusBadRequest, "Title cannot be empty")
	case errors.Is(err, service.ErrTitleLength):
		respondError(c, http.StatusBadRequest, "Title must be between 1 and 200 characters")
	case errors.Is(err, service.ErrNoFields):
		respondError(c, http.StatusBadRequest, "At least one field (title or completed) must be provided")
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
