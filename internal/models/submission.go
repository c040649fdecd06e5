package model

import "time"

// SubmissionType représente les types de preuve acceptés
type SubmissionType string

const (
	SubmissionTypeVideo SubmissionType = "video"
	SubmissionTypePhoto SubmissionType = "photo"
	SubmissionTypeText  SubmissionType = "text"
	SubmissionTypeEmoji SubmissionType = "emoji"
)

// ValidSubmissionType vérifie que le type fait partie des quatre types connus
func ValidSubmissionType(t SubmissionType) bool {
	switch t {
	case SubmissionTypeVideo, SubmissionTypePhoto, SubmissionTypeText, SubmissionTypeEmoji:
		return true
	}
	return false
}

// ReactionType représente les réactions possibles sur une soumission
type ReactionType string

const (
	ReactionHeart ReactionType = "heart"
	ReactionFire  ReactionType = "fire"
	ReactionClap  ReactionType = "clap"
)

// ValidReactionType vérifie que la réaction fait partie des types connus
func ValidReactionType(t ReactionType) bool {
	switch t {
	case ReactionHeart, ReactionFire, ReactionClap:
		return true
	}
	return false
}

// Reaction est une réaction d'un utilisateur sur une soumission
type Reaction struct {
	UserID string       `json:"userId"`
	Type   ReactionType `json:"type"`
}

// Comment est un commentaire d'un utilisateur sur une soumission
type Comment struct {
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submission représente la tentative d'un utilisateur sur le défi d'un jour.
// Les champs de base sont immutables; seuls reactions et comments sont
// ajoutés après coup (append-only).
type Submission struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	ChallengeID  string         `json:"challengeId"`
	ChallengeDay int            `json:"challengeDay"`
	Type         SubmissionType `json:"type"`
	Content      string         `json:"content"` // URL pour video/photo, texte sinon
	IsSuccess    bool           `json:"isSuccess"`
	Points       int            `json:"points"`
	GroupID      string         `json:"groupId,omitempty"`
	Reactions    []Reaction     `json:"reactions"`
	Comments     []Comment      `json:"comments"`
	CreatedAt    time.Time      `json:"createdAt"`
}
