// Package postgresstore implémente store.Store au-dessus de PostgreSQL via pgx.
package postgresstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/scanner"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const userColumns = `id, email, name, avatar, current_day, current_streak, longest_streak,
	total_points, total_challenges, success_rate, badges, group_ids, created_at, last_login_at`

const submissionColumns = `id, user_id, challenge_id, challenge_day, type, content,
	is_success, points, group_id, reactions, comments, created_at`

const groupColumns = `id, name, description, owner_id, member_ids, total_points,
	is_public, invite_code, created_at`

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// translateError convertit les erreurs pgx vers les sentinelles du package store
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return store.ErrDuplicate
	}
	return err
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

	err := s.pool.QueryRow(ctx, `
		INSERT INTO users(id, email, name, avatar, current_day, current_streak, longest_streak,
			total_points, total_challenges, success_rate, badges, group_ids, created_at, last_login_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),NOW())
		RETURNING created_at, last_login_at`,
		u.ID, u.Email, u.Name, utils.StringToNullString(u.Avatar),
		u.CurrentDay, u.CurrentStreak, u.LongestStreak,
		u.TotalPoints, u.TotalChallenges, u.SuccessRate,
		pq.Array(u.Badges), pq.Array(u.GroupIDs),
	).Scan(&u.CreatedAt, &u.LastLoginAt)

	return translateError(err)
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	u, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	u, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, updates model.UserUpdate) error {
	// Mise à jour partielle: les champs nil ne sont pas touchés
	res, err := s.pool.Exec(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			avatar = COALESCE($3, avatar),
			current_day = COALESCE($4, current_day),
			last_login_at = COALESCE($5, last_login_at)
		WHERE id=$1`,
		id, updates.Name, updates.Avatar, updates.CurrentDay, updates.LastLoginAt,
	)
	if err != nil {
		return translateError(err)
	}
	if res.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ApplyUserStats sérialise la lecture-modification-écriture des agrégats
// d'un utilisateur avec un verrou de ligne (SELECT ... FOR UPDATE).
func (s *Store) ApplyUserStats(ctx context.Context, userID string, apply func(u *model.UserProfile) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1 FOR UPDATE`, userID)
	u, err := scanner.ScanUserProfile(row)
	if err != nil {
		return translateError(err)
	}

	if err := apply(u); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET
			current_streak=$2, longest_streak=$3, total_points=$4,
			total_challenges=$5, success_rate=$6, badges=$7
		WHERE id=$1`,
		userID, u.CurrentStreak, u.LongestStreak, u.TotalPoints,
		u.TotalChallenges, u.SuccessRate, pq.Array(u.Badges),
	)
	if err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

// ---- Challenges ----

func (s *Store) CreateChallenge(ctx context.Context, c *model.Challenge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO challenges(id, day, title, description, video_url, duration, difficulty, points, is_active, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
		RETURNING created_at`,
		c.ID, c.Day, c.Title, c.Description, c.VideoURL,
		c.Duration, c.Difficulty, c.Points, c.IsActive,
	).Scan(&c.CreatedAt)

	return translateError(err)
}

func (s *Store) ListChallenges(ctx context.Context) ([]model.Challenge, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, day, title, description, video_url, duration, difficulty, points, is_active, created_at
		FROM challenges
		ORDER BY day ASC`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	challenges := []model.Challenge{}
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *c)
	}

	return challenges, rows.Err()
}

func (s *Store) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, day, title, description, video_url, duration, difficulty, points, is_active, created_at
		FROM challenges WHERE id=$1`, id)
	c, err := scanner.ScanChallenge(row)
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (s *Store) GetChallengeByDay(ctx context.Context, day int) (*model.Challenge, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, day, title, description, video_url, duration, difficulty, points, is_active, created_at
		FROM challenges WHERE day=$1`, day)
	c, err := scanner.ScanChallenge(row)
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
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

	reactions, err := json.Marshal(sub.Reactions)
	if err != nil {
		return err
	}
	comments, err := json.Marshal(sub.Comments)
	if err != nil {
		return err
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO submissions(id, user_id, challenge_id, challenge_day, type, content,
			is_success, points, group_id, reactions, comments, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW())
		RETURNING created_at`,
		sub.ID, sub.UserID, sub.ChallengeID, sub.ChallengeDay, sub.Type, sub.Content,
		sub.IsSuccess, sub.Points, utils.StringToNullString(sub.GroupID), reactions, comments,
	).Scan(&sub.CreatedAt)

	return translateError(err)
}

func (s *Store) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id=$1`, id)
	sub, err := scanner.ScanSubmission(row)
	if err != nil {
		return nil, translateError(err)
	}
	return sub, nil
}

func (s *Store) ListUserSubmissions(ctx context.Context, userID string) ([]model.Submission, error) {
	return s.listSubmissions(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

func (s *Store) ListGroupSubmissions(ctx context.Context, groupID string) ([]model.Submission, error) {
	return s.listSubmissions(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE group_id=$1 ORDER BY created_at DESC`, groupID)
}

func (s *Store) listSubmissions(ctx context.Context, query string, arg interface{}) ([]model.Submission, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		sub, err := scanner.ScanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *sub)
	}

	return submissions, rows.Err()
}

func (s *Store) AddReaction(ctx context.Context, submissionID string, reaction model.Reaction) error {
	payload, err := json.Marshal(reaction)
	if err != nil {
		return err
	}
	return s.appendJSON(ctx, submissionID, "reactions", payload)
}

func (s *Store) AddComment(ctx context.Context, submissionID string, comment model.Comment) error {
	payload, err := json.Marshal(comment)
	if err != nil {
		return err
	}
	return s.appendJSON(ctx, submissionID, "comments", payload)
}

// appendJSON ajoute un élément en fin de tableau JSONB (append-only)
func (s *Store) appendJSON(ctx context.Context, submissionID, column string, element []byte) error {
	res, err := s.pool.Exec(ctx,
		`UPDATE submissions SET `+column+` = `+column+` || $2::jsonb WHERE id=$1`,
		submissionID, element,
	)
	if err != nil {
		return translateError(err)
	}
	if res.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ---- Groups ----

func (s *Store) CreateGroup(ctx context.Context, g *model.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.MemberIDs == nil {
		g.MemberIDs = []string{}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO groups(id, name, description, owner_id, member_ids, total_points, is_public, invite_code, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,NOW())
		RETURNING created_at`,
		g.ID, g.Name, utils.StringToNullString(g.Description), g.OwnerID,
		pq.Array(g.MemberIDs), g.TotalPoints, g.IsPublic, g.InviteCode,
	).Scan(&g.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	// Le groupe est ajouté au groupIds du propriétaire dans la même transaction
	_, err = tx.Exec(ctx,
		`UPDATE users SET group_ids = array_append(group_ids, $2) WHERE id=$1`,
		g.OwnerID, g.ID,
	)
	if err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

func (s *Store) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id=$1`, id)
	g, err := scanner.ScanGroup(row)
	if err != nil {
		return nil, translateError(err)
	}
	return g, nil
}

func (s *Store) GetGroupByInviteCode(ctx context.Context, code string) (*model.Group, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE invite_code=$1`, code)
	g, err := scanner.ScanGroup(row)
	if err != nil {
		return nil, translateError(err)
	}
	return g, nil
}

// AddGroupMember ajoute l'utilisateur des deux côtés de la relation sous un
// verrou de ligne sur le groupe, pour sérialiser les joins concurrents.
func (s *Store) AddGroupMember(ctx context.Context, groupID, userID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var memberIDs []string
	err = tx.QueryRow(ctx,
		`SELECT member_ids FROM groups WHERE id=$1 FOR UPDATE`, groupID,
	).Scan(pq.Array(&memberIDs))
	if err != nil {
		return translateError(err)
	}

	for _, id := range memberIDs {
		if id == userID {
			return store.ErrAlreadyMember
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE groups SET member_ids = array_append(member_ids, $2) WHERE id=$1`,
		groupID, userID,
	)
	if err != nil {
		return translateError(err)
	}

	// Côté utilisateur: best-effort, un utilisateur disparu n'annule pas le join
	_, err = tx.Exec(ctx,
		`UPDATE users SET group_ids = array_append(group_ids, $2) WHERE id=$1`,
		userID, groupID,
	)
	if err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

// ListUserGroups résout chaque id de User.groupIds, en ignorant les
// références pendantes vers des groupes supprimés.
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

// ListGroupMembers résout chaque memberId dans l'ordre du tableau,
// même politique de skip tolérant.
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
	_, err := s.pool.Exec(ctx, `
		INSERT INTO activities(id, user_id, type, content, related_id, group_id, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.UserID, a.Type, a.Content,
		utils.StringToNullString(a.RelatedID), utils.StringToNullString(a.GroupID), a.CreatedAt,
	)
	return translateError(err)
}

func (s *Store) ListUserActivities(ctx context.Context, userID string, limit int) ([]model.Activity, error) {
	return s.listActivities(ctx,
		`SELECT id, user_id, type, content, related_id, group_id, created_at
		 FROM activities WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
}

func (s *Store) ListGroupActivities(ctx context.Context, groupID string, limit int) ([]model.Activity, error) {
	return s.listActivities(ctx,
		`SELECT id, user_id, type, content, related_id, group_id, created_at
		 FROM activities WHERE group_id=$1 ORDER BY created_at DESC LIMIT $2`, groupID, limit)
}

func (s *Store) listActivities(ctx context.Context, query string, arg interface{}, limit int) ([]model.Activity, error) {
	rows, err := s.pool.Query(ctx, query, arg, limit)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		a, err := scanner.ScanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}

	return activities, rows.Err()
}
