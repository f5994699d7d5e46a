package database_test

import (
	"context"
	"testing"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/repository"
	"github.com/dom/floricola-erp/internal/repository/database"
	"github.com/dom/floricola-erp/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewSQLiteDB(t)
	repo := database.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.Must(uuid.NewV7()),
				Email:        "testuser@example.com",
				PasswordHash: "hashedpassword",
				Role:         "user",
			},
		},
		{
			name: "duplicate email",
			user: &domain.User{
				ID:           uuid.Must(uuid.NewV7()),
				Email:        "testuser@example.com", // Same as above
				PasswordHash: "hashedpassword2",
				Role:         "user",
			},
			wantErr: repository.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, tt.user.CreatedAt.IsZero())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewSQLiteDB(t)
	repo := database.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("getbyid@example.com").
		WithRole("admin").
		Build(t, testDB.DB)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "getbyid@example.com", got.Email)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewSQLiteDB(t)
	repo := database.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("byemail@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "existing user", email: "byemail@example.com"},
		{name: "non-existent user", email: "nobody@example.com", wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}
