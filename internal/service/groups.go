package service

import (
	"context"
	"errors"
	"fmt"

	model "github.com/MassBabyGeek/FitDaily-backend/internal/models"
	"github.com/MassBabyGeek/FitDaily-backend/internal/store"
	"github.com/MassBabyGeek/FitDaily-backend/internal/utils"
)

// inviteCodeAttempts nombre d'essais avant d'abandonner sur collision
const inviteCodeAttempts = 5

// GroupInput est la charge utile de POST /api/groups
type GroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"ownerId"`
	IsPublic    bool   `json:"isPublic"`
}

// GroupService gère les groupes et la résolution des codes d'invitation
type GroupService struct {
	store store.Store
}

func NewGroupService(st store.Store) *GroupService {
	return &GroupService{store: st}
}

// Create crée un groupe avec son propriétaire comme premier membre.
// Le code d'invitation est regénéré tant qu'il entre en collision avec
// un code existant (contrainte d'unicité du store).
func (s *GroupService) Create(ctx context.Context, in GroupInput) (*model.Group, error) {
	if in.Name == "" {
		return nil, validationErr("name", "required")
	}
	if in.OwnerID == "" {
		return nil, validationErr("ownerId", "required")
	}

	if _, err := s.store.GetUser(ctx, in.OwnerID); err != nil {
		return nil, fmt.Errorf("owner %s: %w", in.OwnerID, err)
	}

	var lastErr error
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		group := &model.Group{
			Name:        in.Name,
			Description: in.Description,
			OwnerID:     in.OwnerID,
			MemberIDs:   []string{in.OwnerID},
			IsPublic:    in.IsPublic,
			InviteCode:  utils.GenerateInviteCode(),
		}

		err := s.store.CreateGroup(ctx, group)
		if err == nil {
			return group, nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("could not create group: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("could not generate a unique invite code: %w", lastErr)
}

// Join résout un code d'invitation et ajoute l'utilisateur au groupe.
// Retourne store.ErrNotFound si le code ne correspond à aucun groupe et
// store.ErrAlreadyMember si l'utilisateur y est déjà.
func (s *GroupService) Join(ctx context.Context, inviteCode, userID string) (*model.Group, error) {
	if inviteCode == "" {
		return nil, validationErr("inviteCode", "required")
	}
	if userID == "" {
		return nil, validationErr("userId", "required")
	}

	group, err := s.store.GetGroupByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddGroupMember(ctx, group.ID, userID); err != nil {
		return nil, err
	}
	group.MemberIDs = append(group.MemberIDs, userID)

	// Fil d'activité en best-effort
	activity := &model.Activity{
		UserID:    userID,
		Type:      model.ActivityJoinedGroup,
		Content:   fmt.Sprintf("joined the group %s", group.Name),
		RelatedID: group.ID,
		GroupID:   group.ID,
	}
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		utils.LogError("could not record joined_group activity for user %s: %v", userID, err)
	}

	return group, nil
}

// ListUserGroups résout les groupes d'un utilisateur en ignorant les
// références pendantes
func (s *GroupService) ListUserGroups(ctx context.Context, userID string) ([]model.Group, error) {
	return s.store.ListUserGroups(ctx, userID)
}

// ListGroupMembers résout les membres d'un groupe, même politique tolérante
func (s *GroupService) ListGroupMembers(ctx context.Context, groupID string) ([]model.UserProfile, error) {
	return s.store.ListGroupMembers(ctx, groupID)
}
