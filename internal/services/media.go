package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/MassBabyGeek/FitDaily-backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaService gère l'upload des preuves de soumission et des avatars.
// L'URL retournée devient le content de la soumission; le stockage binaire
// lui-même reste un collaborateur externe.
type MediaService struct {
	cld *cloudinary.Cloudinary
}

// NewMediaService initialise le client Cloudinary depuis la configuration
func NewMediaService(cfg *config.Config) (*MediaService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &MediaService{cld: cld}, nil
}

// UploadProof upload la preuve d'une soumission (photo ou vidéo)
func (s *MediaService) UploadProof(ctx context.Context, file multipart.File, userID, challengeID string) (string, error) {
	publicID := fmt.Sprintf("proofs/%s_%s", userID, challengeID)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "fitdaily/proofs",
		Overwrite:    &overwrite,
		ResourceType: "auto", // photo ou vidéo selon le fichier
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload proof: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// UploadAvatar upload l'avatar d'un utilisateur
func (s *MediaService) UploadAvatar(ctx context.Context, file multipart.File, userID string) (string, error) {
	publicID := fmt.Sprintf("avatars/%s", userID)
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "fitdaily/avatars",
		Overwrite:      &overwrite,
		ResourceType:   "image",
		Format:         "jpg",
		Transformation: "c_fill,g_face,h_500,w_500",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadResult.SecureURL, nil
}
