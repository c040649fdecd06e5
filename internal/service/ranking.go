package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
)

// weeklyPointsPercent approximation des points de la semaine: 30% du total.
// Tient lieu de vraie requête fenêtrée par date sur l'historique des
// soumissions (écart assumé, voir DESIGN.md).
const weeklyPointsPercent = 30

// RankingService calcule le classement hebdomadaire d'un groupe
type RankingService struct {
	store store.Store
}

func NewRankingService(st store.Store) *RankingService {
	return &RankingService{store: st}
}

// ComputeRanking recalcule entièrement le classement à chaque appel,
// à partir des agrégats courants des membres. Rien n'est mis en cache.
// Tri décroissant sur weeklyPoints, rangs denses 1..N, les égalités
// gardent l'ordre d'itération des membres.
func (s *RankingService) ComputeRanking(ctx context.Context, groupID string) ([]model.WeeklyRanking, error) {
	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(time.Now())

	rankings := make([]model.WeeklyRanking, 0, len(members))
	for _, member := range members {
		rankings = append(rankings, model.WeeklyRanking{
			ID:                  fmt.Sprintf("%s_%s", groupID, member.ID),
			UserID:              member.ID,
			GroupID:             groupID,
			WeekStart:           weekStart,
			WeeklyPoints:        member.TotalPoints * weeklyPointsPercent / 100,
			CompletedChallenges: member.TotalChallenges,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].WeeklyPoints > rankings[j].WeeklyPoints
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings, nil
}

// startOfWeek retourne le lundi 00:00 de la semaine de t
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // dimanche
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
