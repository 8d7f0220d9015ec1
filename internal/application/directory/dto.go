package directory

import (
	"time"

	"github.com/tabledash/backend/internal/domain/directory"
)

// CreateUserInput contains the input for creating a directory user
type CreateUserInput struct {
	FirstName string
	LastName  string
	Gender    string
	Email     string
	BirthDate string
}

// UpdateUserInput contains the input for updating a directory user
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Gender    string
	Email     string
	BirthDate string
}

// UploadImageInput carries a profile image payload
type UploadImageInput struct {
	UserID      int64
	Data        []byte
	ContentType string
}

// UserInfo is the client-facing view of a directory user
type UserInfo struct {
	ID           int64
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	BirthDate    string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUserInfo maps a domain user to its client-facing view
func NewUserInfo(user *directory.User) UserInfo {
	return UserInfo{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Gender:       user.Gender,
		Email:        user.Email,
		BirthDate:    user.BirthDate,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
