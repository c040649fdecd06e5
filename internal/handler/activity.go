package handler

import (
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

const defaultActivityLimit = 50

func activityLimit(r *http.Request) int {
	limit := defaultActivityLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 {
			limit = l
		}
	}
	return limit
}

func (h *Handler) GetUserActivity(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	activities, err := h.Store.ListUserActivities(r.Context(), userID, activityLimit(r))
	if err != nil {
		respondError(w, err, "could not list activity")
		return
	}

	utils.Success(w, activities)
}

func (h *Handler) GetGroupActivity(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	activities, err := h.Store.ListGroupActivities(r.Context(), groupID, activityLimit(r))
	if err != nil {
		respondError(w, err, "could not list group activity")
		return
	}

	utils.Success(w, activities)
}
