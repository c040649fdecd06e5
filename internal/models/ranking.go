package model

import "time"

// WeeklyRanking est une entrée du classement hebdomadaire d'un groupe.
// Toujours recalculée à la demande, jamais persistée.
type WeeklyRanking struct {
	ID                  string    `json:"id"` // "{groupId}_{userId}"
	UserID              string    `json:"userId"`
	GroupID             string    `json:"groupId"`
	WeekStart           time.Time `json:"weekStart"`
	WeeklyPoints        int       `json:"weeklyPoints"`
	Rank                int       `json:"rank"`
	CompletedChallenges int       `json:"completedChallenges"`
}
