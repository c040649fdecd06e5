package handler

import (
	"errors"
	"net/http"

	"github.com/MassBabyGeek/FitDaily-backend/internal/service"
	"github.com/MassBabyGeek/FitDaily-backend/internal/services"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
)

// Handler porte le store et les services; pas d'état global
type Handler struct {
	Store       store.Store
	Submissions *service.SubmissionService
	Groups      *service.GroupService
	Rankings    *service.RankingService
	Media       *services.MediaService // nil si Cloudinary n'est pas configuré
}

func New(st store.Store, media *services.MediaService) *Handler {
	return &Handler{
		Store:       st,
		Submissions: service.NewSubmissionService(st),
		Groups:      service.NewGroupService(st),
		Rankings:    service.NewRankingService(st),
		Media:       media,
	}
}

// respondError mappe la taxonomie d'erreurs vers les codes HTTP:
// ValidationError -> 400, NotFound -> 404, AlreadyMember/Duplicate -> 409,
// tout le reste -> 500.
func respondError(w http.ResponseWriter, err error, message string) {
	switch {
	case service.IsValidation(err):
		utils.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		utils.Error(w, http.StatusNotFound, message, err)
	case errors.Is(err, store.ErrAlreadyMember):
		utils.Error(w, http.StatusConflict, "already a member of this group", nil)
	case errors.Is(err, store.ErrDuplicate):
		utils.Error(w, http.StatusConflict, message, err)
	default:
		utils.Error(w, http.StatusInternalServerError, message, err)
	}
}
