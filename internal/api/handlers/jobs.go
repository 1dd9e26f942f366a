package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careernet/careernet/internal/api/middleware"
	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/service"
	"github.com/careernet/careernet/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type JobsHandler struct {
	jobService *service.JobService
	hub        *websocket.Hub
}

func NewJobsHandler(jobService *service.JobService, hub *websocket.Hub) *JobsHandler {
	return &JobsHandler{
		jobService: jobService,
		hub:        hub,
	}
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input service.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrJobTitleRequired) {
			http.Error(w, "Title and company are required", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.hub.BroadcastJobPosted(job)
	writeJSON(w, job)
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	jobs, err := h.jobService.ListJobs(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, jobs)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, ok := parseJobID(w, r)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, job)
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var input service.UpdateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobService.UpdateJob(r.Context(), jobID, userID, input)
	if err != nil {
		writeJobError(w, err)
		return
	}

	writeJSON(w, job)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, ok := parseJobID(w, r)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(r.Context(), jobID, userID); err != nil {
		writeJobError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}

type applyRequest struct {
	CoverNote string `json:"coverNote"`
}

func (h *JobsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	application, err := h.jobService.Apply(r.Context(), jobID, userID, req.CoverNote)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			http.Error(w, "Job not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrJobInactive):
			http.Error(w, "Job is no longer active", http.StatusBadRequest)
		case errors.Is(err, domain.ErrAlreadyApplied):
			http.Error(w, "Already applied to this job", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, application)
}

func (h *JobsHandler) Applications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, ok := parseJobID(w, r)
	if !ok {
		return
	}

	applications, err := h.jobService.ListJobApplications(r.Context(), jobID, userID)
	if err != nil {
		writeJobError(w, err)
		return
	}

	writeJSON(w, applications)
}

func parseJobID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid job id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return jobID, true
}

func writeJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		http.Error(w, "Job not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNotJobOwner):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
