package handler

import (
	"net/http"
	"strconv"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.Store.ListChallenges(r.Context())
	if err != nil {
		respondError(w, err, "could not list challenges")
		return
	}

	utils.Success(w, challenges)
}

func (h *Handler) GetChallengeByDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil || day < 1 {
		utils.ErrorSimple(w, http.StatusBadRequest, "day must be a positive integer")
		return
	}

	challenge, err := h.Store.GetChallengeByDay(r.Context(), day)
	if err != nil {
		respondError(w, err, "challenge not found")
		return
	}

	utils.Success(w, challenge)
}

// CreateChallengeInput charge utile de POST /api/challenges
type CreateChallengeInput struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Difficulty  int    `json:"difficulty"`
	Points      int    `json:"points,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var in CreateChallengeInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.Day < 1 {
		utils.ErrorSimple(w, http.StatusBadRequest, "day must be >= 1")
		return
	}
	if in.Title == "" || in.Description == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "title and description are required")
		return
	}
	if in.Difficulty < 1 || in.Difficulty > 3 {
		utils.ErrorSimple(w, http.StatusBadRequest, "difficulty must be between 1 and 3")
		return
	}

	challenge := &model.Challenge{
		Day:         in.Day,
		Title:       in.Title,
		Description: in.Description,
		VideoURL:    in.VideoURL,
		Duration:    in.Duration,
		Difficulty:  in.Difficulty,
		Points:      in.Points,
		IsActive:    true,
	}
	if challenge.Points == 0 {
		challenge.Points = 100
	}
	if in.IsActive != nil {
		challenge.IsActive = *in.IsActive
	}

	if err := h.Store.CreateChallenge(r.Context(), challenge); err != nil {
		respondError(w, err, "could not create challenge")
		return
	}

	utils.Success(w, challenge)
}
