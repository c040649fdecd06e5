package handler

import (
	"errors"
	"net/http"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

// CreateUserInput charge utile de POST /api/users
type CreateUserInput struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in CreateUserInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.Email == "" || in.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "email and name are required")
		return
	}

	user := &model.UserProfile{
		Email:      in.Email,
		Name:       in.Name,
		Avatar:     in.Avatar,
		CurrentDay: 1,
		Badges:     []string{},
		GroupIDs:   []string{},
	}

	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.ErrorSimple(w, http.StatusBadRequest, "email already registered")
			return
		}
		respondError(w, err, "could not create user")
		return
	}

	utils.Success(w, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err, "user not found")
		return
	}

	utils.Success(w, user)
}

func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		respondError(w, err, "user not found")
		return
	}

	utils.Success(w, user)
}

// UpdateUser mise à jour partielle: seuls les champs présents sont modifiés
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var updates model.UserUpdate
	if err := utils.DecodeJSON(r, &updates); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Store.UpdateUser(r.Context(), id, updates); err != nil {
		respondError(w, err, "could not update user")
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err, "could not reload user")
		return
	}

	utils.Success(w, user)
}
