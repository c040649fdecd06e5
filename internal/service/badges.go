package service

import (
	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
)

// Badges attribués sur les agrégats mis à jour
const (
	BadgeOnFire      = "on-fire"      // 3 réussites d'affilée
	BadgeIronWill    = "iron-will"    // 5 challenges tentés
	BadgeWeekWarrior = "week-warrior" // 7 réussites d'affilée
	BadgeStarPlayer  = "star-player"  // 1000 points cumulés
)

// evaluateBadges retourne les badges nouvellement gagnés et les ajoute
// au profil. Un badge déjà présent n'est jamais ré-attribué.
func evaluateBadges(u *model.UserProfile) []string {
	type rule struct {
		badge  string
		earned bool
	}

	rules := []rule{
		{BadgeOnFire, u.CurrentStreak >= 3},
		{BadgeIronWill, u.TotalChallenges >= 5},
		{BadgeWeekWarrior, u.CurrentStreak >= 7},
		{BadgeStarPlayer, u.TotalPoints >= 1000},
	}

	owned := make(map[string]bool, len(u.Badges))
	for _, b := range u.Badges {
		owned[b] = true
	}

	newBadges := []string{}
	for _, r := range rules {
		if r.earned && !owned[r.badge] {
			u.Badges = append(u.Badges, r.badge)
			newBadges = append(newBadges, r.badge)
		}
	}

	return newBadges
}
