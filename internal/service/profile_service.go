package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
	"machinehub/internal/repository"
	"machinehub/internal/storage"
)

// ProfileView is a user with their activity counts.
type ProfileView struct {
	User           *model.User `json:"user"`
	MachinesCount  int64       `json:"machines_count"`
	EnquiriesCount int64       `json:"enquiries_count"`
}

// ProfileUpdate holds the editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
}

// ImageUpload is an uploaded profile picture.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ProfileService reads and edits the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (*ProfileView, error)
	Update(ctx context.Context, userID uint, upd ProfileUpdate, image *ImageUpload) (*model.User, error)
}

type profileService struct {
	repos     repository.Repositories
	tx        repository.TxManager
	images    storage.ImageStore
	validator *InputValidator
	log       *zap.Logger
	now       func() time.Time
}

// NewProfileService creates a new profile service.
func NewProfileService(repos repository.Repositories, tx repository.TxManager, images storage.ImageStore, log *zap.Logger) ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &profileService{
		repos:     repos,
		tx:        tx,
		images:    images,
		validator: NewInputValidator(),
		log:       log,
		now:       time.Now,
	}
}

// Get returns the profile with counts: machines listed, and enquiries received
// (suppliers) or sent (everyone else).
func (s *profileService) Get(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &ProfileView{User: user}

	if user.Role == model.RoleSupplier {
		ids, err := s.repos.Machines.IDsBySupplier(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		view.MachinesCount = int64(len(ids))
		if view.EnquiriesCount, err = s.repos.Enquiries.CountByMachineIDs(ctx, ids); err != nil {
			return nil, err
		}
		return view, nil
	}

	if view.EnquiriesCount, err = s.repos.Enquiries.CountByBuyer(ctx, user.ID); err != nil {
		return nil, err
	}
	return view, nil
}

// Update applies profile edits and an optional new picture. The previous picture
// is removed only after the new one is committed.
func (s *profileService) Update(ctx context.Context, userID uint, upd ProfileUpdate, image *ImageUpload) (*model.User, error) {
	trimAll(upd.Name, upd.CompanyName, upd.City, upd.Industry, upd.Phone)
	if err := s.validator.Validate(upd); err != nil {
		return nil, err
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	var newImage string
	if image != nil {
		ref, err := s.saveImage(ctx, userID, image)
		if err != nil {
			return nil, err
		}
		newImage = ref
	}

	var (
		user     *model.User
		previous string
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		previous = user.ProfileImage

		applyProfile(user, upd)
		if newImage != "" {
			user.ProfileImage = newImage
		}
		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		if newImage != "" {
			s.removeImage(ctx, newImage)
		}
		return nil, err
	}

	if newImage != "" && previous != "" && previous != newImage {
		s.removeImage(ctx, previous)
	}
	return user, nil
}

func applyProfile(user *model.User, upd ProfileUpdate) {
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.CompanyName != nil {
		user.CompanyName = *upd.CompanyName
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.Industry != nil {
		user.Industry = *upd.Industry
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
}

func (s *profileService) saveImage(ctx context.Context, userID uint, image *ImageUpload) (string, error) {
	if s.images == nil {
		return "", errors.New("image store not configured")
	}
	if image.Filename == "" || !storage.AllowedImage(image.Filename) {
		return "", apperrors.NewValidationError("profile_image", "must be a png, jpg, jpeg, gif or webp file")
	}
	if image.Size > storage.MaxImageSize {
		return "", apperrors.NewValidationError("profile_image", "must be at most 16MB")
	}

	key := fmt.Sprintf("profile_images/user_%d_%d_%s", userID, s.now().Unix(), storage.SafeFilename(image.Filename))
	ref, err := s.images.Save(ctx, key, io.LimitReader(image.Content, storage.MaxImageSize))
	if err != nil {
		return "", fmt.Errorf("save profile image: %w", err)
	}
	return ref, nil
}

func (s *profileService) removeImage(ctx context.Context, ref string) {
	if err := s.images.Delete(ctx, ref); err != nil {
		s.log.Warn("remove profile image", zap.String("image", ref), zap.Error(err))
	}
}
