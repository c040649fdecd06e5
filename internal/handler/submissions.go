package handler

import (
	"net/http"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/service"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

// CreateSubmission enregistre une tentative puis applique les stats
// de l'utilisateur de façon synchrone
func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var in service.SubmissionInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	submission, err := h.Submissions.Record(r.Context(), in)
	if err != nil {
		respondError(w, err, "could not record submission")
		return
	}

	utils.Success(w, submission)
}

func (h *Handler) GetUserSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	submissions, err := h.Submissions.ListUserSubmissions(r.Context(), userID)
	if err != nil {
		respondError(w, err, "could not list submissions")
		return
	}

	utils.Success(w, submissions)
}

func (h *Handler) GetGroupSubmissions(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	submissions, err := h.Submissions.ListGroupSubmissions(r.Context(), groupID)
	if err != nil {
		respondError(w, err, "could not list group submissions")
		return
	}

	utils.Success(w, submissions)
}

// AddReaction ajoute une réaction (heart/fire/clap) à une soumission
func (h *Handler) AddReaction(w http.ResponseWriter, r *http.Request) {
	submissionID := mux.Vars(r)["id"]

	var reaction model.Reaction
	if err := utils.DecodeJSON(r, &reaction); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Submissions.AddReaction(r.Context(), submissionID, reaction); err != nil {
		respondError(w, err, "could not add reaction")
		return
	}

	submission, err := h.Store.GetSubmission(r.Context(), submissionID)
	if err != nil {
		respondError(w, err, "could not reload submission")
		return
	}

	utils.Success(w, submission)
}

// AddComment ajoute un commentaire à une soumission
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	submissionID := mux.Vars(r)["id"]

	var comment model.Comment
	if err := utils.DecodeJSON(r, &comment); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Submissions.AddComment(r.Context(), submissionID, comment); err != nil {
		respondError(w, err, "could not add comment")
		return
	}

	submission, err := h.Store.GetSubmission(r.Context(), submissionID)
	if err != nil {
		respondError(w, err, "could not reload submission")
		return
	}

	utils.Success(w, submission)
}
