// Package store définit l'interface de persistance unique du backend.
// Deux adaptateurs l'implémentent: postgresstore (pgx) et sqlitestore (gorm),
// choisis au démarrage via la configuration.
package store

import (
	"context"
	"errors"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
)

var (
	// ErrNotFound est retourné quand un identifiant ne résout aucune entité
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyMember est retourné quand l'utilisateur est déjà membre du groupe
	ErrAlreadyMember = errors.New("store: already a member")

	// ErrDuplicate est retourné sur violation d'unicité (email, code d'invitation)
	ErrDuplicate = errors.New("store: duplicate value")
)

// Store regroupe les opérations de lecture/écriture par entité.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *model.UserProfile) error
	GetUser(ctx context.Context, id string) (*model.UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	UpdateUser(ctx context.Context, id string, updates model.UserUpdate) error

	// ApplyUserStats exécute une lecture-modification-écriture sérialisée
	// sur les agrégats d'un utilisateur (transaction ou verrou de ligne).
	// Retourne ErrNotFound si l'utilisateur n'existe pas.
	ApplyUserStats(ctx context.Context, userID string, apply func(u *model.UserProfile) error) error

	// Challenges
	CreateChallenge(ctx context.Context, c *model.Challenge) error
	ListChallenges(ctx context.Context) ([]model.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*model.Challenge, error)
	GetChallengeByDay(ctx context.Context, day int) (*model.Challenge, error)

	// Submissions
	CreateSubmission(ctx context.Context, s *model.Submission) error
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	ListUserSubmissions(ctx context.Context, userID string) ([]model.Submission, error)
	ListGroupSubmissions(ctx context.Context, groupID string) ([]model.Submission, error)
	AddReaction(ctx context.Context, submissionID string, reaction model.Reaction) error
	AddComment(ctx context.Context, submissionID string, comment model.Comment) error

	// Groups
	CreateGroup(ctx context.Context, g *model.Group) error
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	GetGroupByInviteCode(ctx context.Context, code string) (*model.Group, error)

	// AddGroupMember ajoute l'utilisateur aux deux côtés de la relation
	// (Group.memberIds et User.groupIds) dans une même transaction.
	// Retourne ErrAlreadyMember si l'utilisateur y est déjà.
	AddGroupMember(ctx context.Context, groupID, userID string) error

	ListUserGroups(ctx context.Context, userID string) ([]model.Group, error)
	ListGroupMembers(ctx context.Context, groupID string) ([]model.UserProfile, error)

	// Activity feed
	CreateActivity(ctx context.Context, a *model.Activity) error
	ListUserActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error)
	ListGroupActivities(ctx context.Context, groupID string, limit int) ([]model.Activity, error)
}
