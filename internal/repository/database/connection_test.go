package database_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"testing"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/repository/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSQLLogger_OmitsBoundValues(t *testing.T) {
	var buf bytes.Buffer

	cfg := database.GormConfig(logger.Info)
	cfg.Logger = database.NewSQLLogger(log.New(&buf, "", 0), logger.Info)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	ctx := context.Background()
	require.NoError(t, database.NewSchemaRepository(db).EnsureUsers(ctx))

	const hash = "$2a$10$SECRETHASHSECRETHASHSECRETHASHSECRETHASHSECRETHASHSE"
	repo := database.NewUserRepository(db)
	require.NoError(t, repo.Create(ctx, &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        "hidden@floricola.test",
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	}))
	_, err = repo.GetByEmail(ctx, "hidden@floricola.test")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INSERT INTO")
	assert.Contains(t, out, "SELECT")
	assert.NotContains(t, out, hash)
	assert.NotContains(t, out, "hidden@floricola.test")
}

func TestDialector_UnsupportedDriver(t *testing.T) {
	_, err := database.Dialector("oracle", "dsn")
	assert.ErrorContains(t, err, "unsupported database driver")
}
