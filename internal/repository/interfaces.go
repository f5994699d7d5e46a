package repository

import (
	"context"
	"errors"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ClienteRepository interface {
	Create(ctx context.Context, cliente *domain.Cliente) error
	// List returns every cliente, most recently created first.
	List(ctx context.Context) ([]*domain.Cliente, error)
	// Delete removes the cliente if present. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SchemaRepository creates tables on demand. Both calls are idempotent.
type SchemaRepository interface {
	EnsureUsers(ctx context.Context) error
	EnsureClientes(ctx context.Context) error
}

type Repositories struct {
	User    UserRepository
	Cliente ClienteRepository
	Schema  SchemaRepository
}
