// Package sqlitestore implémente store.Store au-dessus de SQLite via gorm.
// Les ensembles (badges, groupIds, memberIds) et les listes de réactions et
// commentaires sont sérialisés en JSON dans des colonnes texte.
package sqlitestore

import (
	"context"
	"errors"
	"strings"
	"time"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// Open ouvre (ou crée) la base SQLite et migre le schéma
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&userRow{}, &challengeRow{}, &submissionRow{}, &groupRow{}, &activityRow{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrDuplicate
	}
	return err
}

// ---- Rows gorm ----

type userRow struct {
	ID              string `gorm:"primaryKey"`
	Email           string `gorm:"uniqueIndex"`
	Name            string
	Avatar          string
	CurrentDay      int
	CurrentStreak   int
	LongestStreak   int
	TotalPoints     int
	TotalChallenges int
	SuccessRate     int
	Badges          []string `gorm:"serializer:json"`
	GroupIDs        []string `gorm:"column:group_ids;serializer:json"`
	CreatedAt       time.Time
	LastLoginAt     time.Time
}

func (userRow) TableName() string { return "users" }

type challengeRow struct {
	ID          string `gorm:"primaryKey"`
	Day         int    `gorm:"uniqueIndex"`
	Title       string
	Description string
	VideoURL    string `gorm:"column:video_url"`
	Duration    string
	Difficulty  int
	Points      int
	IsActive    bool
	CreatedAt   time.Time
}

func (challengeRow) TableName() string { return "challenges" }

type submissionRow struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"index"`
	ChallengeID  string
	ChallengeDay int
	Type         string
	Content      string
	IsSuccess    bool
	Points       int
	GroupID      string           `gorm:"index"`
	Reactions    []model.Reaction `gorm:"serializer:json"`
	Comments     []model.Comment  `gorm:"serializer:json"`
	CreatedAt    time.Time
}

func (submissionRow) TableName() string { return "submissions" }

type groupRow struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Description string
	OwnerID     string
	MemberIDs   []string `gorm:"column:member_ids;serializer:json"`
	TotalPoints int
	IsPublic    bool
	InviteCode  string `gorm:"uniqueIndex"`
	CreatedAt   time.Time
}

func (groupRow) TableName() string { return "groups" }

type activityRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Type      string
	Content   string
	RelatedID string
	GroupID   string `gorm:"index"`
	CreatedAt time.Time
}

func (activityRow) TableName() string { return "activities" }

// ---- Conversions ----

func toUserModel(r *userRow) *model.UserProfile {
	u := &model.UserProfile{
		ID:              r.ID,
		Email:           r.Email,
		Name:            r.Name,
		Avatar:          r.Avatar,
		CurrentDay:      r.CurrentDay,
		CurrentStreak:   r.CurrentStreak,
		LongestStreak:   r.LongestStreak,
		TotalPoints:     r.TotalPoints,
		TotalChallenges: r.TotalChallenges,
		SuccessRate:     r.SuccessRate,
		Badges:          r.Badges,
		GroupIDs:        r.GroupIDs,
		CreatedAt:       r.CreatedAt,
		LastLoginAt:     r.LastLoginAt,
	}
	if u.Badges == nil {
		u.Badges = []string{}
	}
	if u.GroupIDs == nil {
		u.GroupIDs = []string{}
	}
	return u
}

func fromUserModel(u *model.UserProfile) *userRow {
	return &userRow{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Avatar:          u.Avatar,
		CurrentDay:      u.CurrentDay,
		CurrentStreak:   u.CurrentStreak,
		LongestStreak:   u.LongestStreak,
		TotalPoints:     u.TotalPoints,
		TotalChallenges: u.TotalChallenges,
		SuccessRate:     u.SuccessRate,
		Badges:          u.Badges,
		GroupIDs:        u.GroupIDs,
		CreatedAt:       u.CreatedAt,
		LastLoginAt:     u.LastLoginAt,
	}
}

func toChallengeModel(r *challengeRow) *model.Challenge {
	return &model.Challenge{
		ID:          r.ID,
		Day:         r.Day,
		Title:       r.Title,
		Description: r.Description,
		VideoURL:    r.VideoURL,
		Duration:    r.Duration,
		Difficulty:  r.Difficulty,
		Points:      r.Points,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func toSubmissionModel(r *submissionRow) *model.Submission {
	s := &model.Submission{
		ID:           r.ID,
		UserID:       r.UserID,
		ChallengeID:  r.ChallengeID,
		ChallengeDay: r.ChallengeDay,
		Type:         model.SubmissionType(r.Type),
		Content:      r.Content,
		IsSuccess:    r.IsSuccess,
		Points:       r.Points,
		GroupID:      r.GroupID,
		Reactions:    r.Reactions,
		Comments:     r.Comments,
		CreatedAt:    r.CreatedAt,
	}
	if s.Reactions == nil {
		s.Reactions = []model.Reaction{}
	}
	if s.Comments == nil {
		s.Comments = []model.Comment{}
	}
	return s
}

func toGroupModel(r *groupRow) *model.Group {
	g := &model.Group{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		MemberIDs:   r.MemberIDs,
		TotalPoints: r.TotalPoints,
		IsPublic:    r.IsPublic,
		InviteCode:  r.InviteCode,
		CreatedAt:   r.CreatedAt,
	}
	if g.MemberIDs == nil {
		g.MemberIDs = []string{}
	}
	return g
}

func toActivityModel(r *activityRow) *model.Activity {
	return &model.Activity{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      model.ActivityType(r.Type),
		Content:   r.Content,
		RelatedID: r.RelatedID,
		GroupID:   r.GroupID,
		CreatedAt: r.CreatedAt,
	}
}

// ---- Users ----

func (s *Store) CreateUser(ctx context.Context, u *model.UserProfile) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CurrentDay == 0 {
		u.CurrentDay = 1
	}
	if u.Badges == nil {
		u.Badges = []string{}
	}
	if u.GroupIDs == nil {
		u.GroupIDs = []string{}
	}
	now := time.Now()
	u.CreatedAt = now
	u.LastLoginAt = now

	err := s.db.WithContext(ctx).Create(fromUserModel(u)).Error
	return translateError(err)
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	var r userRow
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return toUserModel(&r), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var r userRow
	if err := s.db.WithContext(ctx).First(&r, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return toUserModel(&r), nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, updates model.UserUpdate) error {
	fields := map[string]interface{}{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Avatar != nil {
		fields["avatar"] = *updates.Avatar
	}
	if updates.CurrentDay != nil {
		fields["current_day"] = *updates.CurrentDay
	}
	if updates.LastLoginAt != nil {
		fields["last_login_at"] = *updates.LastLoginAt
	}
	if len(fields) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ApplyUserStats sérialise la lecture-modification-écriture via une
// transaction (SQLite n'admet qu'un seul writer à la fois).
func (s *Store) ApplyUserStats(ctx context.Context, userID string, apply func(u *model.UserProfile) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r userRow
		if err := tx.First(&r, "id = ?", userID).Error; err != nil {
			return translateError(err)
		}

		u := toUserModel(&r)
		if err := apply(u); err != nil {
			return err
		}

		return tx.Model(&userRow{ID: userID}).
			Select("current_streak", "longest_streak", "total_points", "total_challenges", "success_rate", "badges").
			Updates(fromUserModel(u)).Error
	})
	return translateError(err)
}

// ---- Challenges ----

func (s *Store) CreateChallenge(ctx context.Context, c *model.Challenge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()

	r := challengeRow{
		ID:          c.ID,
		Day:         c.Day,
		Title:       c.Title,
		Description: c.Description,
		VideoURL:    c.VideoURL,
		Duration:    c.Duration,
		Difficulty:  c.Difficulty,
		Points:      c.Points,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
	return translateError(s.db.WithContext(ctx).Create(&r).Error)
}

func (s *Store) ListChallenges(ctx context.Context) ([]model.Challenge, error) {
	var rows []challengeRow
	if err := s.db.WithContext(ctx).Order("day ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	challenges := []model.Challenge{}
	for i := range rows {
		challenges = append(challenges, *toChallengeModel(&rows[i]))
	}
	return challenges, nil
}

func (s *Store) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	var r challengeRow
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return toChallengeModel(&r), nil
}

func (s *Store) GetChallengeByDay(ctx context.Context, day int) (*model.Challenge, error) {
	var r challengeRow
	if err := s.db.WithContext(ctx).First(&r, "day = ?", day).Error; err != nil {
		return nil, translateError(err)
	}
	return toChallengeModel(&r), nil
}

// ---- Submissions ----

func (s *Store) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Reactions == nil {
		sub.Reactions = []model.Reaction{}
	}
	if sub.Comments == nil {
		sub.Comments = []model.Comment{}
	}
	sub.CreatedAt = time.Now()

	r := submissionRow{
		ID:           sub.ID,
		UserID:       sub.UserID,
		ChallengeID:  sub.ChallengeID,
		ChallengeDay: sub.ChallengeDay,
		Type:         string(sub.Type),
		Content:      sub.Content,
		IsSuccess:    sub.IsSuccess,
		Points:       sub.Points,
		GroupID:      sub.GroupID,
		Reactions:    sub.Reactions,
		Comments:     sub.Comments,
		CreatedAt:    sub.CreatedAt,
	}
	return translateError(s.db.WithContext(ctx).Create(&r).Error)
}

func (s *Store) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var r submissionRow
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return toSubmissionModel(&r), nil
}

func (s *Store) ListUserSubmissions(ctx context.Context, userID string) ([]model.Submission, error) {
	var rows []submissionRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	submissions := []model.Submission{}
	for i := range rows {
		submissions = append(submissions, *toSubmissionModel(&rows[i]))
	}
	return submissions, nil
}

func (s *Store) ListGroupSubmissions(ctx context.Context, groupID string) ([]model.Submission, error) {
	var rows []submissionRow
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	submissions := []model.Submission{}
	for i := range rows {
		submissions = append(submissions, *toSubmissionModel(&rows[i]))
	}
	return submissions, nil
}

func (s *Store) AddReaction(ctx context.Context, submissionID string, reaction model.Reaction) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r submissionRow
		if err := tx.First(&r, "id = ?", submissionID).Error; err != nil {
			return translateError(err)
		}
		r.Reactions = append(r.Reactions, reaction)
		return tx.Save(&r).Error
	})
	return translateError(err)
}

func (s *Store) AddComment(ctx context.Context, submissionID string, comment model.Comment) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r submissionRow
		if err := tx.First(&r, "id = ?", submissionID).Error; err != nil {
			return translateError(err)
		}
		r.Comments = append(r.Comments, comment)
		return tx.Save(&r).Error
	})
	return translateError(err)
}

// ---- Groups ----

func (s *Store) CreateGroup(ctx context.Context, g *model.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.MemberIDs == nil {
		g.MemberIDs = []string{}
	}
	g.CreatedAt = time.Now()

	r := groupRow{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		OwnerID:     g.OwnerID,
		MemberIDs:   g.MemberIDs,
		TotalPoints: g.TotalPoints,
		IsPublic:    g.IsPublic,
		InviteCode:  g.InviteCode,
		CreatedAt:   g.CreatedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&r).Error; err != nil {
			return err
		}

		// Ajout du groupe au groupIds du propriétaire
		var owner userRow
		if err := tx.First(&owner, "id = ?", g.OwnerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		owner.GroupIDs = append(owner.GroupIDs, g.ID)
		return tx.Save(&owner).Error
	})
	return translateError(err)
}

func (s *Store) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	var r groupRow
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return toGroupModel(&r), nil
}

func (s *Store) GetGroupByInviteCode(ctx context.Context, code string) (*model.Group, error) {
	var r groupRow
	if err := s.db.WithContext(ctx).First(&r, "invite_code = ?", code).Error; err != nil {
		return nil, translateError(err)
	}
	return toGroupModel(&r), nil
}

func (s *Store) AddGroupMember(ctx context.Context, groupID, userID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r groupRow
		if err := tx.First(&r, "id = ?", groupID).Error; err != nil {
			return translateError(err)
		}

		for _, id := range r.MemberIDs {
			if id == userID {
				return store.ErrAlreadyMember
			}
		}

		r.MemberIDs = append(r.MemberIDs, userID)
		if err := tx.Save(&r).Error; err != nil {
			return err
		}

		// Côté utilisateur: best-effort
		var u userRow
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		u.GroupIDs = append(u.GroupIDs, groupID)
		return tx.Save(&u).Error
	})
	return translateError(err)
}

func (s *Store) ListUserGroups(ctx context.Context, userID string) ([]model.Group, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Group{}, nil
		}
		return nil, err
	}

	groups := []model.Group{}
	for _, groupID := range u.GroupIDs {
		g, err := s.GetGroup(ctx, groupID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

func (s *Store) ListGroupMembers(ctx context.Context, groupID string) ([]model.UserProfile, error) {
	g, err := s.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.UserProfile{}, nil
		}
		return nil, err
	}

	members := []model.UserProfile{}
	for _, memberID := range g.MemberIDs {
		u, err := s.GetUser(ctx, memberID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		members = append(members, *u)
	}
	return members, nil
}

// ---- Activity feed ----

func (s *Store) CreateActivity(ctx context.Context, a *model.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	r := activityRow{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      string(a.Type),
		Content:   a.Content,
		RelatedID: a.RelatedID,
		GroupID:   a.GroupID,
		CreatedAt: a.CreatedAt,
	}
	return translateError(s.db.WithContext(ctx).Create(&r).Error)
}

func (s *Store) ListUserActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error) {
	var rows []activityRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	activities := []model.Activity{}
	for i := range rows {
		activities = append(activities, *toActivityModel(&rows[i]))
	}
	return activities, nil
}

func (s *Store) ListGroupActivities(ctx context.Context, groupID string, limit int) ([]model.Activity, error) {
	var rows []activityRow
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	activities := []model.Activity{}
	for i := range rows {
		activities = append(activities, *toActivityModel(&rows[i]))
	}
	return activities, nil
}
