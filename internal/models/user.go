package model

import (
	"time"
)

// UserProfile représente un utilisateur et ses statistiques agrégées.
// Les champs de stats (streak, points, successRate) ne sont modifiés
// que par le service de soumissions.
type UserProfile struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar,omitempty"`
	CurrentDay      int       `json:"currentDay"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	TotalPoints     int       `json:"totalPoints"`
	TotalChallenges int       `json:"totalChallenges"`
	SuccessRate     int       `json:"successRate"`
	Badges          []string  `json:"badges"`
	GroupIDs        []string  `json:"groupIds"`
	CreatedAt       time.Time `json:"createdAt"`
	LastLoginAt     time.Time `json:"lastLoginAt"`
}

// UserUpdate contient les champs modifiables via PUT /api/users/{id}.
// Un pointeur nil signifie "ne pas toucher".
type UserUpdate struct {
	Name        *string    `json:"name,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	CurrentDay  *int       `json:"currentDay,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
