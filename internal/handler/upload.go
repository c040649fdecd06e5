package handler

import (
	"net/http"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/gorilla/mux"
)

// maxUploadSize taille maximum d'une preuve uploadée (20 Mo)
const maxUploadSize = 20 << 20

// UploadProof upload la preuve d'une soumission et retourne son URL.
// Le client passe ensuite cette URL comme content de POST /api/submissions.
func (h *Handler) UploadProof(w http.ResponseWriter, r *http.Request) {
	if h.Media == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "media upload is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	userID := r.FormValue("userId")
	challengeID := r.FormValue("challengeId")
	if userID == "" || challengeID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId and challengeId are required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	url, err := h.Media.UploadProof(r.Context(), file, userID, challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload proof", err)
		return
	}

	utils.Success(w, map[string]string{"url": url})
}

// UploadAvatar upload l'avatar d'un utilisateur et met à jour son profil
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if h.Media == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "media upload is not configured")
		return
	}

	userID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	url, err := h.Media.UploadAvatar(r.Context(), file, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	if err := h.Store.UpdateUser(r.Context(), userID, model.UserUpdate{Avatar: &url}); err != nil {
		respondError(w, err, "could not update avatar")
		return
	}

	utils.Success(w, map[string]string{"url": url})
}
