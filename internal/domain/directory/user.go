package directory

import (
	"strings"

	"github.com/tabledash/backend/internal/domain/shared"
)

// User is a person record in the directory (the "users" collection).
// It carries no credentials; only accounts can log in.
type User struct {
	shared.BaseEntity
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	BirthDate    string
	ProfileImage string
}

// NewUser creates a directory user record.
func NewUser(firstName, lastName, gender, email, birthDate string) (*User, error) {
	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		Gender:     strings.TrimSpace(gender),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		BirthDate:  strings.TrimSpace(birthDate),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the record's field constraints, aggregating every
// violated rule into one message.
func (u *User) Validate() error {
	var problems []string
	if u.FirstName == "" || len(u.FirstName) > 50 {
		problems = append(problems, "First name is required and cannot exceed 50 characters")
	}
	if u.LastName == "" || len(u.LastName) > 50 {
		problems = append(problems, "Last name is required and cannot exceed 50 characters")
	}
	if u.Gender != "Male" && u.Gender != "Female" {
		problems = append(problems, "Please select a gender")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		problems = append(problems, "A valid email is required")
	}
	if u.BirthDate == "" {
		problems = append(problems, "Birth date is required")
	}
	if len(problems) > 0 {
		return shared.NewDomainError("VALIDATION_ERROR", strings.Join(problems, ", "))
	}
	return nil
}

// SetProfileImage records the stored image URL for the user.
func (u *User) SetProfileImage(url string) {
	u.ProfileImage = url
	u.Touch()
}

// ClearProfileImage removes the stored image URL.
func (u *User) ClearProfileImage() {
	u.ProfileImage = ""
	u.Touch()
}
