package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *models.User {
	return &models.User{
		ID:        "uid-1",
		Name:      "Jane Smith",
		Username:  "savvysaver",
		Bio:       "Budgeting expert",
		JoinedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Followers: []string{"2"},
		Following: []string{},
		Badges:    []string{"debtFree"},
	}
}

func TestMemoryProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	_, err := repo.GetProfile(ctx, "uid-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	u := sampleUser()
	require.NoError(t, repo.SaveProfile(ctx, u))
	u.Followers[0] = "mutated"

	got, err := repo.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, got.Followers)
}

func TestSQLiteProfileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteProfileRepository(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.GetProfile(ctx, "uid-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	want := sampleUser()
	want.JoinedAt = time.Date(2024, 3, 1, 9, 30, 15, 123456789, time.UTC)
	require.NoError(t, repo.SaveProfile(ctx, want))

	want.Bio = "Updated bio"
	require.NoError(t, repo.SaveProfile(ctx, want))

	got, err := repo.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, "Updated bio", got.Bio)
	assert.True(t, want.JoinedAt.Equal(got.JoinedAt))
	assert.Equal(t, []string{"2"}, got.Followers)
	assert.Equal(t, []string{}, got.Following)
	assert.Equal(t, []string{"debtFree"}, got.Badges)
}

func TestSQLiteProfileRepository_BadJoinedAt(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteProfileRepository(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.SaveProfile(ctx, sampleUser()))
	_, err = repo.db.ExecContext(ctx, `UPDATE profiles SET joined_at = 'yesterday' WHERE id = ?`, "uid-1")
	require.NoError(t, err)

	_, err = repo.GetProfile(ctx, "uid-1")
	assert.ErrorContains(t, err, "joined_at")
}

func TestMemoryCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCredentialRepository()

	require.NoError(t, repo.CreateCredential(ctx, &models.Credential{UserID: "u1", Username: "Saver", PasswordHash: "h"}))
	assert.ErrorIs(t, repo.CreateCredential(ctx, &models.Credential{UserID: "u2", Username: "saver"}), ErrUsernameTaken)

	cred, err := repo.GetCredentialByUsername(ctx, "SAVER")
	require.NoError(t, err)
	assert.Equal(t, "u1", cred.UserID)

	_, err = repo.GetCredentialByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, repo.DeleteCredential(ctx, "SAVER"))
	_, err = repo.GetCredentialByUsername(ctx, "saver")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.ErrorIs(t, repo.DeleteCredential(ctx, "saver"), ErrCredentialNotFound)
	require.NoError(t, repo.CreateCredential(ctx, &models.Credential{UserID: "u2", Username: "saver"}))
}
