package api

import (
	"net/http"

	"github.com/MassBabyGeek/FitDaily-backend/internal/handler"
	"github.com/MassBabyGeek/FitDaily-backend/internal/middleware"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

// SetupRouter enregistre toutes les routes de l'API
func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - documentation de l'API
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/email/{email}", h.GetUserByEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/users/{id}/avatar", h.UploadAvatar).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}/submissions", h.GetUserSubmissions).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/groups", h.GetUserGroups).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/activity", h.GetUserActivity).Methods(http.MethodGet)

	// Challenges
	api.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	api.HandleFunc("/challenges", h.CreateChallenge).Methods(http.MethodPost)
	api.HandleFunc("/challenges/day/{day}", h.GetChallengeByDay).Methods(http.MethodGet)

	// Submissions
	api.HandleFunc("/submissions", h.CreateSubmission).Methods(http.MethodPost)
	api.HandleFunc("/submissions/upload", h.UploadProof).Methods(http.MethodPost)
	api.HandleFunc("/submissions/{id}/reactions", h.AddReaction).Methods(http.MethodPost)
	api.HandleFunc("/submissions/{id}/comments", h.AddComment).Methods(http.MethodPost)

	// Groups
	api.HandleFunc("/groups", h.CreateGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/join", h.JoinGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupId}/members", h.GetGroupMembers).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupId}/ranking", h.GetGroupRanking).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupId}/submissions", h.GetGroupSubmissions).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupId}/activity", h.GetGroupActivity).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		utils.ErrorSimple(w, http.StatusNotFound, "route not found")
	})

	return r
}
