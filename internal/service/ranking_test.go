package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
)

func createUserWithPoints(t *testing.T, st store.Store, email string, points, challenges int) *model.UserProfile {
	t.Helper()
	u := &model.UserProfile{
		Email:           email,
		Name:            email,
		TotalPoints:     points,
		TotalChallenges: challenges,
		Badges:          []string{},
		GroupIDs:        []string{},
	}
	if err := st.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func TestComputeRanking(t *testing.T) {
	st := newTestStore(t)
	svc := NewRankingService(st)
	ctx := context.Background()

	a := createUserWithPoints(t, st, "a@test.dev", 1000, 10)
	b := createUserWithPoints(t, st, "b@test.dev", 500, 5)
	c := createUserWithPoints(t, st, "c@test.dev", 500, 6)
	d := createUserWithPoints(t, st, "d@test.dev", 0, 0)

	group := &model.Group{
		Name:       "Crew",
		OwnerID:    a.ID,
		MemberIDs:  []string{a.ID, b.ID, c.ID, d.ID},
		InviteCode: "RANK01",
	}
	if err := st.CreateGroup(ctx, group); err != nil {
		t.Fatalf("create group: %v", err)
	}

	rankings, err := svc.ComputeRanking(ctx, group.ID)
	if err != nil {
		t.Fatalf("compute ranking: %v", err)
	}
	if len(rankings) != 4 {
		t.Fatalf("got %d entries, want 4", len(rankings))
	}

	// 30% du total: 300, 150, 150, 0
	wantOrder := []struct {
		userID string
		points int
		rank   int
	}{
		{a.ID, 300, 1},
		{b.ID, 150, 2}, // égalité avec c, l'ordre des membres est conservé
		{c.ID, 150, 3},
		{d.ID, 0, 4},
	}
	for i, want := range wantOrder {
		got := rankings[i]
		if got.UserID != want.userID {
			t.Errorf("rankings[%d].userID = %s, want %s", i, got.UserID, want.userID)
		}
		if got.WeeklyPoints != want.points {
			t.Errorf("rankings[%d].weeklyPoints = %d, want %d", i, got.WeeklyPoints, want.points)
		}
		if got.Rank != want.rank {
			t.Errorf("rankings[%d].rank = %d, want %d", i, got.Rank, want.rank)
		}
		if wantID := fmt.Sprintf("%s_%s", group.ID, got.UserID); got.ID != wantID {
			t.Errorf("rankings[%d].id = %s, want %s", i, got.ID, wantID)
		}
		if got.WeekStart.Weekday() != time.Monday {
			t.Errorf("weekStart %v is not a Monday", got.WeekStart)
		}
	}

	if rankings[1].CompletedChallenges != 5 {
		t.Errorf("completedChallenges = %d, want 5", rankings[1].CompletedChallenges)
	}
}

func TestComputeRankingUnknownGroup(t *testing.T) {
	st := newTestStore(t)
	svc := NewRankingService(st)

	rankings, err := svc.ComputeRanking(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("compute ranking: %v", err)
	}
	if len(rankings) != 0 {
		t.Errorf("rankings = %+v, want empty list", rankings)
	}
}

func TestStartOfWeek(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2026, 1, 7, 15, 30, 0, 0, paris),
			time.Date(2026, 1, 5, 0, 0, 0, 0, paris),
		},
		{
			"sunday maps to previous monday",
			time.Date(2026, 1, 11, 23, 59, 0, 0, paris),
			time.Date(2026, 1, 5, 0, 0, 0, 0, paris),
		},
		{
			"monday is its own week start",
			time.Date(2026, 1, 5, 0, 0, 1, 0, paris),
			time.Date(2026, 1, 5, 0, 0, 0, 0, paris),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := startOfWeek(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
