package model

import "time"

// ActivityType représente les types d'événements du fil d'activité
type ActivityType string

const (
	ActivityChallengeCompleted ActivityType = "challenge_completed"
	ActivityStreakMilestone    ActivityType = "streak_milestone"
	ActivityBadgeEarned        ActivityType = "badge_earned"
	ActivityJoinedGroup        ActivityType = "joined_group"
)

// Activity est un événement du fil d'activité, écrit en best-effort
// par les services (jamais bloquant pour l'opération principale).
type Activity struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Type      ActivityType `json:"type"`
	Content   string       `json:"content"`
	RelatedID string       `json:"relatedId,omitempty"` // challengeId, badge, etc.
	GroupID   string       `json:"groupId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
