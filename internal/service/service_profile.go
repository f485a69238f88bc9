package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/visa-assistant/internal/filestore"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/store"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

type profileService struct {
	userRepository store.UserRepository
	files          filestore.FileStorage
	validator      validators.Validator

	logger *logger.Logger
}

func NewProfileService(
	userRepository store.UserRepository,
	files filestore.FileStorage,
	validator validators.Validator,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository: userRepository,
		files:          files,
		validator:      validator,
		logger:         logger,
	}
}

// EditProfile applies the fields present in req to the user identified by
// req.Email and returns the updated user.
//
// Steps:
//  1. resolve the user by email, ErrUnauthorized if there is none;
//  2. validate the present fields;
//  3. store the new image, if any;
//  4. persist the partial update;
//  5. remove the previous image, logging failures only.
//
// A new image that could not be persisted is removed again.
func (p *profileService) EditProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Msg("profile edit for unknown email")
		return models.User{}, ErrUnauthorized
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	normalizeProfileRequest(&req)
	if err = p.validator.Validate(ctx, &req); err != nil {
		return models.User{}, err
	}

	update := profileUpdateFromRequest(req)

	var newImagePath string
	if req.Image != nil {
		imageURL, storeErr := p.files.Store(ctx, filestore.ImagesDir, *req.Image)
		if storeErr != nil {
			log.Err(storeErr).Int64("user_id", user.ID).Msg("profile image was not stored")
			return models.User{}, fmt.Errorf("%w: %w", ErrFileStorage, storeErr)
		}
		update.Image = &imageURL
		newImagePath, _ = p.files.PathFromURL(imageURL)
	}

	if update.IsEmpty() {
		return user, nil
	}

	updated, err := p.userRepository.UpdateProfile(ctx, user.ID, update)
	if err != nil {
		if newImagePath != "" {
			p.removeImage(ctx, newImagePath)
		}
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Int64("user_id", user.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if req.Image != nil && user.Image != nil {
		if oldPath, ok := p.files.PathFromURL(*user.Image); ok && oldPath != newImagePath {
			p.removeImage(ctx, oldPath)
		}
	}

	log.Info().Int64("user_id", user.ID).Msg("profile updated")
	return updated, nil
}

// removeImage deletes the object at path if it exists.
func (p *profileService) removeImage(ctx context.Context, path string) {
	log := logger.FromContext(ctx)

	exists, err := p.files.Exists(ctx, path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("could not check profile image")
		return
	}
	if !exists {
		return
	}

	if err = p.files.Delete(ctx, path); err != nil {
		log.Err(err).Str("path", path).Msg("could not delete profile image")
	}
}

// normalizeProfileRequest trims text fields and treats blank values as absent.
func normalizeProfileRequest(req *models.ProfileUpdateRequest) {
	for _, field := range []**string{&req.FirstName, &req.LastName, &req.Location, &req.Description, &req.Age} {
		if *field == nil {
			continue
		}
		trimmed := strings.TrimSpace(**field)
		if trimmed == "" {
			*field = nil
			continue
		}
		*field = &trimmed
	}
}

// profileUpdateFromRequest maps a validated request to the fields to persist.
func profileUpdateFromRequest(req models.ProfileUpdateRequest) models.ProfileUpdate {
	update := models.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Location:    req.Location,
		Description: req.Description,
	}

	if req.Age != nil {
		if age, ok := validators.ParseAge(*req.Age); ok {
			update.Age = &age
		}
	}

	return update
}
