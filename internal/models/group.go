package model

import "time"

// Group représente un groupe de défi rejoint par code d'invitation.
// L'owner fait partie de memberIds dès la création.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"ownerId"`
	MemberIDs   []string  `json:"memberIds"`
	TotalPoints int       `json:"totalPoints"`
	IsPublic    bool      `json:"isPublic"`
	InviteCode  string    `json:"inviteCode"`
	CreatedAt   time.Time `json:"createdAt"`
}
