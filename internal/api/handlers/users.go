package handlers

import (
	"net/http"
	"strconv"

	"github.com/careernet/careernet/internal/api/middleware"
	"github.com/careernet/careernet/internal/service"
)

type UsersHandler struct {
	profileService *service.ProfileService
	jobService     *service.JobService
}

func NewUsersHandler(profileService *service.ProfileService, jobService *service.JobService) *UsersHandler {
	return &UsersHandler{
		profileService: profileService,
		jobService:     jobService,
	}
}

func (h *UsersHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}

	limit, offset := parsePagination(r)
	users, err := h.profileService.SearchUsers(r.Context(), query, limit, offset)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, users)
}

func (h *UsersHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applications, err := h.jobService.ListUserApplications(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, applications)
}

func parsePagination(r *http.Request) (limit, offset int) {
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		offset = v
	}
	return limit, offset
}
