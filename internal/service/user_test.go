package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
	"github.com/maxviazov/jobbot-gateway/internal/service"
)

func TestUserService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo, discard)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, model.User{TgID: 42, Username: " @ann ", FirstName: " Ann ", LanguageCode: "EN"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "ann", u.Username)
	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "en", u.LanguageCode)

	// Re-registration refreshes the profile and keeps the identity.
	u, err = svc.RegisterUser(ctx, model.User{TgID: 42, FirstName: "Anna"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	got, err := svc.GetUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo(), discard)

	_, err := svc.RegisterUser(context.Background(), model.User{
		TgID:         0,
		FirstName:    "  ",
		LastName:     strings.Repeat("x", 65),
		LanguageCode: "much-too-long",
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	fields := map[string]bool{}
	for _, fe := range service.FieldErrors(err) {
		fields[fe.Field] = true
	}
	assert.Equal(t, map[string]bool{"tg_id": true, "first_name": true, "last_name": true, "language_code": true}, fields)
}

func TestUserService_GetUser(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo(), discard)

	_, err := svc.GetUser(context.Background(), -1)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, service.FieldErrors(nil))
	assert.Nil(t, service.FieldErrors(service.ErrForbidden))

	err := service.NewInvalidInputError(nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Nil(t, service.FieldErrors(err))

	err = service.NewInvalidInputError([]service.FieldError{{Field: "page", Message: "must be an integer"}})
	assert.Equal(t, []service.FieldError{{Field: "page", Message: "must be an integer"}}, service.FieldErrors(err))
}

func newBanFixture() (service.UserService, *fakeUserRepo) {
	repo := newFakeUserRepo(
		model.User{TgID: 1, FirstName: "Root", IsAdmin: true},
		model.User{TgID: 2, FirstName: "Ann"},
		model.User{TgID: 3, FirstName: "Ops", IsAdmin: true},
		model.User{TgID: 4, FirstName: "Bob", IsBanned: true},
	)
	return service.NewUserService(repo, discard), repo
}

func TestUserService_BanAndUnban(t *testing.T) {
	svc, repo := newBanFixture()
	ctx := context.Background()

	u, err := svc.BanUser(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, u.IsBanned)
	assert.True(t, repo.byTgID[2].IsBanned)

	// Banning twice is a no-op.
	u, err = svc.BanUser(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, u.IsBanned)

	u, err = svc.UnbanUser(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, u.IsBanned)
	assert.False(t, repo.byTgID[2].IsBanned)

	u, err = svc.UnbanUser(ctx, 1, 4)
	require.NoError(t, err)
	assert.False(t, u.IsBanned)
}

func TestUserService_BanRules(t *testing.T) {
	svc, repo := newBanFixture()
	ctx := context.Background()

	_, err := svc.BanUser(ctx, 2, 4)
	assert.ErrorIs(t, err, service.ErrForbidden, "regular users cannot ban")

	_, err = svc.BanUser(ctx, 1, 3)
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, "target_tg_id", service.FieldErrors(err)[0].Field)
	assert.False(t, repo.byTgID[3].IsBanned)

	_, err = svc.BanUser(ctx, 1, 1)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.BanUser(ctx, 1, 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.BanUser(ctx, 1, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.BanUser(ctx, 404, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserService_BannedUserIsRefusedListings(t *testing.T) {
	svc, repo := newBanFixture()
	ctx := context.Background()
	listings := service.NewListingService(repo, &fakeVacancyRepo{}, &fakeApplicationRepo{}, newFakeSnapshotRepo(), testPaginationConfig(), discard)

	_, err := listings.ApplicationHistory(ctx, 2, 0)
	require.NoError(t, err)

	_, err = svc.BanUser(ctx, 1, 2)
	require.NoError(t, err)
	_, err = listings.ApplicationHistory(ctx, 2, 0)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
