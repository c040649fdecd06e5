package handler

import (
	"net/http"

	"github.com/MassBabyGeek/FitDaily-backend/internal/service"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var in service.GroupInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	group, err := h.Groups.Create(r.Context(), in)
	if err != nil {
		respondError(w, err, "could not create group")
		return
	}

	utils.Success(w, group)
}

// JoinGroupInput charge utile de POST /api/groups/join
type JoinGroupInput struct {
	InviteCode string `json:"inviteCode"`
	UserID     string `json:"userId"`
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var in JoinGroupInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	group, err := h.Groups.Join(r.Context(), in.InviteCode, in.UserID)
	if err != nil {
		respondError(w, err, "invalid invite code")
		return
	}

	utils.Success(w, group)
}

func (h *Handler) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	groups, err := h.Groups.ListUserGroups(r.Context(), userID)
	if err != nil {
		respondError(w, err, "could not list groups")
		return
	}

	utils.Success(w, groups)
}

func (h *Handler) GetGroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	members, err := h.Groups.ListGroupMembers(r.Context(), groupID)
	if err != nil {
		respondError(w, err, "could not list members")
		return
	}

	utils.Success(w, members)
}

// GetGroupRanking recalcule le classement hebdomadaire à chaque appel
func (h *Handler) GetGroupRanking(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	rankings, err := h.Rankings.ComputeRanking(r.Context(), groupID)
	if err != nil {
		respondError(w, err, "could not compute ranking")
		return
	}

	utils.Success(w, rankings)
}
