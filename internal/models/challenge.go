package model

import (
	"time"
)

// Challenge représente le défi d'un jour donné. Immutable après création.
type Challenge struct {
	ID          string    `json:"id"`
	Day         int       `json:"day"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"videoUrl"`
	Duration    string    `json:"duration"`   // libellé, ex: "3 min"
	Difficulty  int       `json:"difficulty"` // 1-3
	Points      int       `json:"points"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
