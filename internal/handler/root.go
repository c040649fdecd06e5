package handler

import (
	"net/http"

	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "FitDaily API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"users": []map[string]string{
				{"method": "POST", "path": "/api/users", "description": "Créer un utilisateur"},
				{"method": "GET", "path": "/api/users/{id}", "description": "Récupérer un utilisateur par ID"},
				{"method": "GET", "path": "/api/users/email/{email}", "description": "Récupérer un utilisateur par email"},
				{"method": "PUT", "path": "/api/users/{id}", "description": "Mise à jour partielle d'un utilisateur"},
				{"method": "POST", "path": "/api/users/{id}/avatar", "description": "Upload avatar utilisateur"},
				{"method": "GET", "path": "/api/users/{userId}/submissions", "description": "Soumissions d'un utilisateur"},
				{"method": "GET", "path": "/api/users/{userId}/groups", "description": "Groupes d'un utilisateur"},
				{"method": "GET", "path": "/api/users/{userId}/activity", "description": "Fil d'activité d'un utilisateur"},
			},
			"challenges": []map[string]string{
				{"method": "GET", "path": "/api/challenges", "description": "Récupérer tous les challenges"},
				{"method": "GET", "path": "/api/challenges/day/{day}", "description": "Challenge d'un jour donné"},
				{"method": "POST", "path": "/api/challenges", "description": "Créer un challenge"},
			},
			"submissions": []map[string]string{
				{"method": "POST", "path": "/api/submissions", "description": "Enregistrer une soumission et appliquer les stats"},
				{"method": "POST", "path": "/api/submissions/upload", "description": "Upload d'une preuve (photo/vidéo)"},
				{"method": "POST", "path": "/api/submissions/{id}/reactions", "description": "Réagir à une soumission"},
				{"method": "POST", "path": "/api/submissions/{id}/comments", "description": "Commenter une soumission"},
			},
			"groups": []map[string]string{
				{"method": "POST", "path": "/api/groups", "description": "Créer un groupe"},
				{"method": "POST", "path": "/api/groups/join", "description": "Rejoindre un groupe par code d'invitation"},
				{"method": "GET", "path": "/api/groups/{groupId}/members", "description": "Membres d'un groupe"},
				{"method": "GET", "path": "/api/groups/{groupId}/ranking", "description": "Classement hebdomadaire du groupe"},
				{"method": "GET", "path": "/api/groups/{groupId}/submissions", "description": "Fil des soumissions du groupe"},
				{"method": "GET", "path": "/api/groups/{groupId}/activity", "description": "Fil d'activité du groupe"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/api/health", "description": "Health check de l'API"},
			},
		},
	}

	utils.Success(w, routes)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
