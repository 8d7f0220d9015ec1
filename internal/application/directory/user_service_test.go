package directory_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	directoryapp "github.com/tabledash/backend/internal/application/directory"
	"github.com/tabledash/backend/internal/domain/directory"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// fakeUserRepo is an in-memory directory.UserRepository
type fakeUserRepo struct {
	users  map[int64]*directory.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*directory.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*directory.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*directory.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindPage(_ context.Context, filter shared.Filter) ([]directory.User, int64, error) {
	filter = filter.Normalize()
	var matched []directory.User
	for _, user := range r.users {
		if filter.Search != "" {
			term := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(user.FirstName), term) &&
				!strings.Contains(strings.ToLower(user.LastName), term) &&
				!strings.Contains(user.Email, term) {
				continue
			}
		}
		matched = append(matched, *user)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *directory.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return shared.NewDomainError("ALREADY_EXISTS", "Email already exists")
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *directory.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return shared.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *directory.User {
	t.Helper()
	user, err := directory.NewUser("Terry", "Medhurst", "Male", email, "1996-05-30")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserServiceCreate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := directoryapp.NewUserService(repo, storage.NewStubObjectStorage(), zap.NewNop())

	info, err := svc.Create(context.Background(), directoryapp.CreateUserInput{
		FirstName: "Terry",
		LastName:  "Medhurst",
		Gender:    "Male",
		Email:     "Terry@Example.com",
		BirthDate: "1996-05-30",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "terry@example.com", info.Email, "emails are stored lowercased")
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), directoryapp.CreateUserInput{
		FirstName: "Terry",
		LastName:  "Medhurst",
		Gender:    "Male",
		Email:     "terry@example.com",
		BirthDate: "1996-05-30",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestUploadProfileImage(t *testing.T) {
	repo := newFakeUserRepo()
	store := storage.NewStubObjectStorage()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, store, zap.NewNop())

	info, err := svc.UploadProfileImage(context.Background(), directoryapp.UploadImageInput{
		UserID:      user.ID,
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
	})
	require.NoError(t, err)

	wantURL := fmt.Sprintf("https://storage.example.com/profile-images/%d.png", user.ID)
	assert.Equal(t, wantURL, info.ProfileImage)

	exists, err := store.ObjectExists(context.Background(), fmt.Sprintf("profile-images/%d.png", user.ID))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadProfileImageRejectsContentType(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, storage.NewStubObjectStorage(), zap.NewNop())

	_, err := svc.UploadProfileImage(context.Background(), directoryapp.UploadImageInput{
		UserID:      user.ID,
		Data:        []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestUploadProfileImageWithoutStorage(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, nil, zap.NewNop())

	_, err := svc.UploadProfileImage(context.Background(), directoryapp.UploadImageInput{
		UserID:      user.ID,
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STORAGE_DISABLED", domainErr.Code)
}

func TestDeleteProfileImage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	store := storage.NewStubObjectStorage()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, store, zap.NewNop())

	_, err := svc.UploadProfileImage(ctx, directoryapp.UploadImageInput{
		UserID:      user.ID,
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
	})
	require.NoError(t, err)

	info, err := svc.DeleteProfileImage(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, info.ProfileImage)

	key := fmt.Sprintf("profile-images/%d.png", user.ID)
	exists, err := store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteProfileImageWithoutImage(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, storage.NewStubObjectStorage(), zap.NewNop())

	_, err := svc.DeleteProfileImage(context.Background(), user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserServiceDeleteRemovesStoredImage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	store := storage.NewStubObjectStorage()
	user := seedUser(t, repo, "terry@example.com")
	svc := directoryapp.NewUserService(repo, store, zap.NewNop())

	_, err := svc.UploadProfileImage(ctx, directoryapp.UploadImageInput{
		UserID:      user.ID,
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	key := fmt.Sprintf("profile-images/%d.png", user.ID)
	exists, err := store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	err = svc.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
