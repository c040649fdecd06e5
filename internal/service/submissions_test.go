package service

import (
	"context"
	"errors"
	"testing"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
)

func recordSuccess(t *testing.T, svc *SubmissionService, userID, challengeID string, day int) *model.Submission {
	t.Helper()
	sub, err := svc.Record(context.Background(), SubmissionInput{
		UserID:       userID,
		ChallengeID:  challengeID,
		ChallengeDay: day,
		Type:         model.SubmissionTypeText,
		Content:      "done",
		IsSuccess:    true,
	})
	if err != nil {
		t.Fatalf("record success: %v", err)
	}
	return sub
}

func TestRecordSuccessUpdatesStats(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	user := createTestUser(t, st, "alice@test.dev", "Alice")
	challenge := createTestChallenge(t, st, 1, "Plank")

	sub := recordSuccess(t, svc, user.ID, challenge.ID, 1)
	if sub.Points != PointsSuccess {
		t.Errorf("points = %d, want %d", sub.Points, PointsSuccess)
	}
	if sub.ID == "" {
		t.Error("submission ID not assigned")
	}

	updated, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if updated.TotalPoints != 100 {
		t.Errorf("totalPoints = %d, want 100", updated.TotalPoints)
	}
	if updated.TotalChallenges != 1 {
		t.Errorf("totalChallenges = %d, want 1", updated.TotalChallenges)
	}
	if updated.CurrentStreak != 1 || updated.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", updated.CurrentStreak, updated.LongestStreak)
	}
	if updated.SuccessRate != 100 {
		t.Errorf("successRate = %d, want 100", updated.SuccessRate)
	}
}

func TestRecordFailureResetsStreak(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	user := createTestUser(t, st, "bob@test.dev", "Bob")
	challenge := createTestChallenge(t, st, 1, "Squats")

	recordSuccess(t, svc, user.ID, challenge.ID, 1)
	recordSuccess(t, svc, user.ID, challenge.ID, 2)

	sub, err := svc.Record(ctx, SubmissionInput{
		UserID:       user.ID,
		ChallengeID:  challenge.ID,
		ChallengeDay: 3,
		Type:         model.SubmissionTypeEmoji,
		Content:      "😓",
		IsSuccess:    false,
	})
	if err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if sub.Points != PointsFailure {
		t.Errorf("points = %d, want %d", sub.Points, PointsFailure)
	}

	updated, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if updated.CurrentStreak != 0 {
		t.Errorf("currentStreak = %d, want 0 after failure", updated.CurrentStreak)
	}
	if updated.LongestStreak != 2 {
		t.Errorf("longestStreak = %d, want 2", updated.LongestStreak)
	}
	// 100 + 100 + 50 points sur 3 tentatives
	if updated.TotalPoints != 250 {
		t.Errorf("totalPoints = %d, want 250", updated.TotalPoints)
	}
	if updated.SuccessRate != 83 {
		t.Errorf("successRate = %d, want 83", updated.SuccessRate)
	}
}

func TestRecordValidation(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	valid := SubmissionInput{
		UserID:       "u1",
		ChallengeID:  "c1",
		ChallengeDay: 1,
		Type:         model.SubmissionTypeVideo,
		Content:      "https://example.com/proof.mp4",
		IsSuccess:    true,
	}

	cases := []struct {
		name   string
		mutate func(in *SubmissionInput)
	}{
		{"missing userId", func(in *SubmissionInput) { in.UserID = "" }},
		{"missing challengeId", func(in *SubmissionInput) { in.ChallengeID = "" }},
		{"day zero", func(in *SubmissionInput) { in.ChallengeDay = 0 }},
		{"bad type", func(in *SubmissionInput) { in.Type = "gif" }},
		{"missing content", func(in *SubmissionInput) { in.Content = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := svc.Record(ctx, in)
			if !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestRecordUnknownReferences(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	user := createTestUser(t, st, "carol@test.dev", "Carol")

	_, err := svc.Record(ctx, SubmissionInput{
		UserID:       user.ID,
		ChallengeID:  "nope",
		ChallengeDay: 1,
		Type:         model.SubmissionTypeText,
		Content:      "done",
		IsSuccess:    true,
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown challenge: err = %v, want ErrNotFound", err)
	}

	_, err = svc.Record(ctx, SubmissionInput{
		UserID:       "nope",
		ChallengeID:  "whatever",
		ChallengeDay: 1,
		Type:         model.SubmissionTypeText,
		Content:      "done",
		IsSuccess:    true,
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown user: err = %v, want ErrNotFound", err)
	}
}

func TestApplyResultMissingUserIsSwallowed(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)

	// Un utilisateur disparu entre la soumission et la mise à jour des
	// stats ne doit pas faire échouer l'opération
	if err := svc.ApplyResult(context.Background(), "ghost", true, PointsSuccess, nil, ""); err != nil {
		t.Errorf("ApplyResult on missing user = %v, want nil", err)
	}
}

func TestStreakMilestoneActivity(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	user := createTestUser(t, st, "dave@test.dev", "Dave")
	challenge := createTestChallenge(t, st, 1, "Jumping jacks")

	for day := 1; day <= 3; day++ {
		recordSuccess(t, svc, user.ID, challenge.ID, day)
	}

	activities, err := st.ListUserActivities(ctx, user.ID, 50)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}

	var milestone, completed, badge bool
	for _, a := range activities {
		switch a.Type {
		case model.ActivityStreakMilestone:
			milestone = true
		case model.ActivityChallengeCompleted:
			completed = true
		case model.ActivityBadgeEarned:
			badge = true
		}
	}
	if !completed {
		t.Error("no challenge_completed activity recorded")
	}
	if !milestone {
		t.Error("no streak_milestone activity at 3-day streak")
	}
	if !badge {
		t.Error("no badge_earned activity for on-fire badge")
	}
}

func TestReactionsAndComments(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubmissionService(st)
	ctx := context.Background()

	user := createTestUser(t, st, "eve@test.dev", "Eve")
	challenge := createTestChallenge(t, st, 1, "Plank")
	sub := recordSuccess(t, svc, user.ID, challenge.ID, 1)

	err := svc.AddReaction(ctx, sub.ID, model.Reaction{UserID: user.ID, Type: "thumbsdown"})
	if !IsValidation(err) {
		t.Errorf("invalid reaction type: err = %v, want validation error", err)
	}

	if err := svc.AddReaction(ctx, sub.ID, model.Reaction{UserID: user.ID, Type: model.ReactionFire}); err != nil {
		t.Fatalf("add reaction: %v", err)
	}
	if err := svc.AddComment(ctx, sub.ID, model.Comment{UserID: user.ID, Content: "nice!"}); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	reloaded, err := st.GetSubmission(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if len(reloaded.Reactions) != 1 || reloaded.Reactions[0].Type != model.ReactionFire {
		t.Errorf("reactions = %+v, want one fire reaction", reloaded.Reactions)
	}
	if len(reloaded.Comments) != 1 || reloaded.Comments[0].Content != "nice!" {
		t.Errorf("comments = %+v, want one comment", reloaded.Comments)
	}
	if reloaded.Comments[0].CreatedAt.IsZero() {
		t.Error("comment createdAt not defaulted")
	}

	err = svc.AddReaction(ctx, "nope", model.Reaction{UserID: user.ID, Type: model.ReactionHeart})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("reaction on unknown submission: err = %v, want ErrNotFound", err)
	}
}

func TestSeedChallenges(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := SeedChallenges(ctx, st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	challenges, err := st.ListChallenges(ctx)
	if err != nil {
		t.Fatalf("list challenges: %v", err)
	}
	if len(challenges) != 3 {
		t.Fatalf("seeded %d challenges, want 3", len(challenges))
	}
	for i, c := range challenges {
		if c.Day != i+1 {
			t.Errorf("challenge %d: day = %d, want %d", i, c.Day, i+1)
		}
	}

	// Un second appel ne doit rien ajouter
	if err := SeedChallenges(ctx, st); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	challenges, _ = st.ListChallenges(ctx)
	if len(challenges) != 3 {
		t.Errorf("after reseed: %d challenges, want 3", len(challenges))
	}
}
