package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/lib/pq"
)

// RowScanner abstrait pgx.Row / pgx.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(s RowScanner) (*model.UserProfile, error) {
	var u model.UserProfile
	var avatar sql.NullString

	err := s.Scan(
		&u.ID, &u.Email, &u.Name, &avatar,
		&u.CurrentDay, &u.CurrentStreak, &u.LongestStreak,
		&u.TotalPoints, &u.TotalChallenges, &u.SuccessRate,
		pq.Array(&u.Badges), pq.Array(&u.GroupIDs),
		&u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	u.Avatar = utils.NullStringToString(avatar)
	if u.Badges == nil {
		u.Badges = []string{}
	}
	if u.GroupIDs == nil {
		u.GroupIDs = []string{}
	}

	return &u, nil
}

// ScanChallenge scanne une ligne SQL vers un Challenge
func ScanChallenge(s RowScanner) (*model.Challenge, error) {
	var c model.Challenge

	err := s.Scan(
		&c.ID, &c.Day, &c.Title, &c.Description, &c.VideoURL,
		&c.Duration, &c.Difficulty, &c.Points, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanSubmission scanne une ligne SQL vers une Submission.
// reactions et comments sont des colonnes JSONB décodées par pgx.
func ScanSubmission(s RowScanner) (*model.Submission, error) {
	var sub model.Submission
	var groupID sql.NullString

	err := s.Scan(
		&sub.ID, &sub.UserID, &sub.ChallengeID, &sub.ChallengeDay,
		&sub.Type, &sub.Content, &sub.IsSuccess, &sub.Points,
		&groupID, &sub.Reactions, &sub.Comments, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.GroupID = utils.NullStringToString(groupID)
	if sub.Reactions == nil {
		sub.Reactions = []model.Reaction{}
	}
	if sub.Comments == nil {
		sub.Comments = []model.Comment{}
	}

	return &sub, nil
}

// ScanGroup scanne une ligne SQL vers un Group
func ScanGroup(s RowScanner) (*model.Group, error) {
	var g model.Group
	var description sql.NullString

	err := s.Scan(
		&g.ID, &g.Name, &description, &g.OwnerID,
		pq.Array(&g.MemberIDs), &g.TotalPoints, &g.IsPublic,
		&g.InviteCode, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Description = utils.NullStringToString(description)
	if g.MemberIDs == nil {
		g.MemberIDs = []string{}
	}

	return &g, nil
}

// ScanActivity scanne une ligne SQL vers une Activity
func ScanActivity(s RowScanner) (*model.Activity, error) {
	var a model.Activity
	var relatedID, groupID sql.NullString

	err := s.Scan(
		&a.ID, &a.UserID, &a.Type, &a.Content,
		&relatedID, &groupID, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.RelatedID = utils.NullStringToString(relatedID)
	a.GroupID = utils.NullStringToString(groupID)

	return &a, nil
}
