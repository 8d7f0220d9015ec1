package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabledash/backend/internal/domain/directory"
	"github.com/tabledash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// imageContentTypes maps accepted upload types to stored file extensions
var imageContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// UserService manages the users collection and its profile images
type UserService struct {
	userRepo directory.UserRepository
	storage  ObjectStorage // nil disables profile images
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo directory.UserRepository, storage ObjectStorage, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// List returns one page of users matching the filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserInfo], error) {
	users, total, err := s.userRepo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = NewUserInfo(&users[i])
	}

	filter = filter.Normalize()
	page := shared.NewPaginated(infos, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get returns a single user by id
func (s *UserService) Get(ctx context.Context, id int64) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewUserInfo(user)
	return &info, nil
}

// Create adds a new user record
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	user, err := directory.NewUser(
		input.FirstName,
		input.LastName,
		input.Gender,
		input.Email,
		input.BirthDate,
	)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	info := NewUserInfo(user)
	return &info, nil
}

// Update replaces a user's profile fields
func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Gender = strings.TrimSpace(input.Gender)
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	user.BirthDate = strings.TrimSpace(input.BirthDate)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.Touch()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	info := NewUserInfo(user)
	return &info, nil
}

// Delete removes a user and any stored profile image
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.storage != nil && user.ProfileImage != "" {
		if err := s.storage.DeleteObject(ctx, imageKey(id, user.ProfileImage)); err != nil {
			s.logger.Warn("Failed to delete profile image from storage",
				zap.Int64("user_id", id),
				zap.Error(err))
		}
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// UploadProfileImage stores an image and records its URL on the user
func (s *UserService) UploadProfileImage(ctx context.Context, input UploadImageInput) (*UserInfo, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Profile image storage is not configured")
	}

	ext, ok := imageContentTypes[input.ContentType]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Profile image must be a JPEG, PNG, WebP or GIF file")
	}
	if len(input.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Profile image file is empty")
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("profile-images/%d.%s", user.ID, ext)
	if err := s.storage.Upload(ctx, key, input.Data, input.ContentType); err != nil {
		s.logger.Error("Failed to upload profile image",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to store profile image")
	}

	user.SetProfileImage(s.storage.ObjectURL(key))
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Profile image uploaded", zap.Int64("user_id", user.ID))
	info := NewUserInfo(user)
	return &info, nil
}

// DeleteProfileImage removes the stored image and clears the user's URL
func (s *UserService) DeleteProfileImage(ctx context.Context, userID int64) (*UserInfo, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Profile image storage is not configured")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ProfileImage == "" {
		return nil, shared.ErrNotFound
	}

	if err := s.storage.DeleteObject(ctx, imageKey(userID, user.ProfileImage)); err != nil {
		s.logger.Warn("Failed to delete profile image from storage",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}

	user.ClearProfileImage()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	info := NewUserInfo(user)
	return &info, nil
}

// imageKey recovers the storage key from a stored image URL. Keys are
// always "profile-images/<id>.<ext>", so only the extension needs to
// come from the URL.
func imageKey(userID int64, imageURL string) string {
	ext := "jpg"
	if i := strings.LastIndex(imageURL, "."); i >= 0 && i < len(imageURL)-1 {
		ext = imageURL[i+1:]
	}
	return fmt.Sprintf("profile-images/%d.%s", userID, ext)
}
