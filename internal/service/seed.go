package service

import (
	"context"
	"fmt"

	"github.com/MassBabyGeek/FitDaily-backend/internal/logger"
	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
)

// defaultChallenges challenges des trois premiers jours, créés au premier
// démarrage si la table est vide. Leurs points déclarés ne sont pas lus
// par le barème de soumission (100/150/120 restent indicatifs).
var defaultChallenges = []model.Challenge{
	{
		Day:         1,
		Title:       "10-second plank challenge",
		Description: "Hold a basic plank for 10 seconds to wake up your core.",
		VideoURL:    "https://www.youtube.com/embed/MHcmC5QeIN8",
		Duration:    "1 min",
		Difficulty:  1,
		Points:      100,
		IsActive:    true,
	},
	{
		Day:         2,
		Title:       "20 squats challenge",
		Description: "Complete 20 squats to build lower body strength.",
		VideoURL:    "https://www.youtube.com/embed/GbqgaOhIizc",
		Duration:    "3 min",
		Difficulty:  2,
		Points:      150,
		IsActive:    true,
	},
	{
		Day:         3,
		Title:       "30-second jumping jacks",
		Description: "Do jumping jacks for 30 seconds, full-body cardio.",
		VideoURL:    "https://www.youtube.com/embed/3iN33mGIdts",
		Duration:    "2 min",
		Difficulty:  1,
		Points:      120,
		IsActive:    true,
	},
}

// SeedChallenges initialise les challenges par défaut si aucun n'existe
func SeedChallenges(ctx context.Context, st store.Store) error {
	existing, err := st.ListChallenges(ctx)
	if err != nil {
		return fmt.Errorf("could not list challenges: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range defaultChallenges {
		c := defaultChallenges[i]
		if err := st.CreateChallenge(ctx, &c); err != nil {
			return fmt.Errorf("could not seed challenge day %d: %w", c.Day, err)
		}
	}

	logger.Success("Seeded %d default challenges", len(defaultChallenges))
	return nil
}
