package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
)

// Barème fixe: le champ points du challenge n'est volontairement pas lu ici
// (politique observée, voir DESIGN.md)
const (
	PointsSuccess = 100
	PointsFailure = 50
)

// streakMilestones paliers donnant lieu à une entrée du fil d'activité
var streakMilestones = map[int]bool{3: true, 7: true, 14: true, 30: true}

// SubmissionInput est la charge utile de POST /api/submissions
type SubmissionInput struct {
	UserID       string               `json:"userId"`
	ChallengeID  string               `json:"challengeId"`
	ChallengeDay int                  `json:"challengeDay"`
	Type         model.SubmissionType `json:"type"`
	Content      string               `json:"content"`
	IsSuccess    bool                 `json:"isSuccess"`
	GroupID      string               `json:"groupId,omitempty"`
}

// SubmissionService enregistre les tentatives et met à jour les stats
type SubmissionService struct {
	store store.Store
}

func NewSubmissionService(st store.Store) *SubmissionService {
	return &SubmissionService{store: st}
}

func (s *SubmissionService) validate(in SubmissionInput) error {
	if in.UserID == "" {
		return validationErr("userId", "required")
	}
	if in.ChallengeID == "" {
		return validationErr("challengeId", "required")
	}
	if in.ChallengeDay < 1 {
		return validationErr("challengeDay", "must be >= 1")
	}
	if !model.ValidSubmissionType(in.Type) {
		return validationErr("type", "must be one of video, photo, text, emoji")
	}
	if in.Content == "" {
		return validationErr("content", "required")
	}
	return nil
}

// Record valide la tentative, la persiste puis applique les stats de
// l'utilisateur de façon synchrone.
func (s *SubmissionService) Record(ctx context.Context, in SubmissionInput) (*model.Submission, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	// Résolution des identifiants avant toute écriture
	if _, err := s.store.GetUser(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("user %s: %w", in.UserID, err)
	}
	challenge, err := s.store.GetChallenge(ctx, in.ChallengeID)
	if err != nil {
		return nil, fmt.Errorf("challenge %s: %w", in.ChallengeID, err)
	}

	points := PointsFailure
	if in.IsSuccess {
		points = PointsSuccess
	}

	sub := &model.Submission{
		UserID:       in.UserID,
		ChallengeID:  in.ChallengeID,
		ChallengeDay: in.ChallengeDay,
		Type:         in.Type,
		Content:      in.Content,
		IsSuccess:    in.IsSuccess,
		Points:       points,
		GroupID:      in.GroupID,
		Reactions:    []model.Reaction{},
		Comments:     []model.Comment{},
	}

	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("could not create submission: %w", err)
	}

	if err := s.ApplyResult(ctx, in.UserID, in.IsSuccess, points, challenge, in.GroupID); err != nil {
		return nil, err
	}

	return sub, nil
}

// ApplyResult recalcule les agrégats de l'utilisateur après une tentative.
// La lecture-modification-écriture est sérialisée par le store (verrou de
// ligne ou transaction). Un utilisateur introuvable est ignoré en loggant,
// jamais remonté.
func (s *SubmissionService) ApplyResult(ctx context.Context, userID string, isSuccess bool, points int, challenge *model.Challenge, groupID string) error {
	var newBadges []string
	var milestone int

	err := s.store.ApplyUserStats(ctx, userID, func(u *model.UserProfile) error {
		u.TotalChallenges++
		u.TotalPoints += points

		if isSuccess {
			u.CurrentStreak++
			if u.CurrentStreak > u.LongestStreak {
				u.LongestStreak = u.CurrentStreak
			}
			if streakMilestones[u.CurrentStreak] {
				milestone = u.CurrentStreak
			}
		} else {
			u.CurrentStreak = 0
		}

		// Ratio points obtenus / points maximum possibles, pas un taux de
		// réussite littéral (formule héritée, conservée telle quelle)
		u.SuccessRate = int(math.Round(float64(u.TotalPoints) / float64(u.TotalChallenges*100) * 100))

		newBadges = evaluateBadges(u)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.LogError("stats update skipped, user %s not found", userID)
			return nil
		}
		return fmt.Errorf("could not update user stats: %w", err)
	}

	s.recordActivities(ctx, userID, isSuccess, challenge, groupID, milestone, newBadges)

	return nil
}

// recordActivities alimente le fil d'activité en best-effort: une erreur
// est loggée mais ne fait jamais échouer la soumission.
func (s *SubmissionService) recordActivities(ctx context.Context, userID string, isSuccess bool, challenge *model.Challenge, groupID string, milestone int, newBadges []string) {
	record := func(a *model.Activity) {
		if err := s.store.CreateActivity(ctx, a); err != nil {
			utils.LogError("could not record activity %s for user %s: %v", a.Type, userID, err)
		}
	}

	if isSuccess && challenge != nil {
		record(&model.Activity{
			UserID:    userID,
			Type:      model.ActivityChallengeCompleted,
			Content:   fmt.Sprintf("completed day %d challenge: %s", challenge.Day, challenge.Title),
			RelatedID: challenge.ID,
			GroupID:   groupID,
		})
	}

	if milestone > 0 {
		record(&model.Activity{
			UserID:  userID,
			Type:    model.ActivityStreakMilestone,
			Content: fmt.Sprintf("reached a %d-day streak", milestone),
			GroupID: groupID,
		})
	}

	for _, badge := range newBadges {
		record(&model.Activity{
			UserID:    userID,
			Type:      model.ActivityBadgeEarned,
			Content:   fmt.Sprintf("earned the %s badge", badge),
			RelatedID: badge,
			GroupID:   groupID,
		})
	}
}

// ListUserSubmissions retourne les tentatives d'un utilisateur, récentes d'abord
func (s *SubmissionService) ListUserSubmissions(ctx context.Context, userID string) ([]model.Submission, error) {
	return s.store.ListUserSubmissions(ctx, userID)
}

// ListGroupSubmissions retourne le fil des tentatives partagées dans un groupe
func (s *SubmissionService) ListGroupSubmissions(ctx context.Context, groupID string) ([]model.Submission, error) {
	return s.store.ListGroupSubmissions(ctx, groupID)
}

// AddReaction ajoute une réaction à une soumission existante (append-only)
func (s *SubmissionService) AddReaction(ctx context.Context, submissionID string, reaction model.Reaction) error {
	if reaction.UserID == "" {
		return validationErr("userId", "required")
	}
	if !model.ValidReactionType(reaction.Type) {
		return validationErr("type", "must be one of heart, fire, clap")
	}
	return s.store.AddReaction(ctx, submissionID, reaction)
}

// AddComment ajoute un commentaire à une soumission existante (append-only)
func (s *SubmissionService) AddComment(ctx context.Context, submissionID string, comment model.Comment) error {
	if comment.UserID == "" {
		return validationErr("userId", "required")
	}
	if comment.Content == "" {
		return validationErr("content", "required")
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	return s.store.AddComment(ctx, submissionID, comment)
}
