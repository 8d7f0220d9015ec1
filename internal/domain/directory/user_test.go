package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledash/backend/internal/domain/shared"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(" Terry ", "Medhurst", "Male", " Terry.Medhurst@Example.COM ", "1996-05-30")
	require.NoError(t, err)

	assert.Equal(t, "Terry", user.FirstName)
	assert.Equal(t, "terry.medhurst@example.com", user.Email)
	assert.Equal(t, "1996-05-30", user.BirthDate)
	assert.Empty(t, user.ProfileImage)
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		last    string
		gender  string
		email   string
		birth   string
		wantMsg string
	}{
		{"missing first name", "", "Medhurst", "Male", "t@example.com", "1996-05-30", "First name is required"},
		{"bad gender", "Terry", "Medhurst", "male", "t@example.com", "1996-05-30", "Please select a gender"},
		{"bad email", "Terry", "Medhurst", "Male", "not-an-email", "1996-05-30", "A valid email is required"},
		{"missing birth date", "Terry", "Medhurst", "Male", "t@example.com", "", "Birth date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.first, tt.last, tt.gender, tt.email, tt.birth)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
			assert.Contains(t, domainErr.Message, tt.wantMsg)
		})
	}
}

func TestProfileImageLifecycle(t *testing.T) {
	user, err := NewUser("Terry", "Medhurst", "Male", "t@example.com", "1996-05-30")
	require.NoError(t, err)

	user.SetProfileImage("https://storage.example.com/profile-images/1.png")
	assert.Equal(t, "https://storage.example.com/profile-images/1.png", user.ProfileImage)

	user.ClearProfileImage()
	assert.Empty(t, user.ProfileImage)
}
