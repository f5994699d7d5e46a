package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/repository"
	"github.com/google/uuid"
)

// FakeUserRepository is an in-memory UserRepository enforcing email uniqueness
// the way the database does. Set Err to make every call fail.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
	Err   error
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[uuid.UUID]domain.User)}
}

func (r *FakeUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: users.email", repository.ErrDuplicateKey)
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Stored returns a copy of every stored user.
func (r *FakeUserRepository) Stored() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out
}

// FakeClienteRepository is an in-memory ClienteRepository.
type FakeClienteRepository struct {
	mu       sync.Mutex
	clientes map[uuid.UUID]domain.Cliente
	Err      error
}

func NewFakeClienteRepository() *FakeClienteRepository {
	return &FakeClienteRepository{clientes: make(map[uuid.UUID]domain.Cliente)}
}

func (r *FakeClienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	if cliente.CreatedAt.IsZero() {
		cliente.CreatedAt = time.Now()
	}
	r.clientes[cliente.ID] = *cliente
	return nil
}

func (r *FakeClienteRepository) List(ctx context.Context) ([]*domain.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (r *FakeClienteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	delete(r.clientes, id)
	return nil
}

// FakeSchemaRepository counts Ensure calls.
type FakeSchemaRepository struct {
	mu            sync.Mutex
	UsersCalls    int
	ClientesCalls int
	Err           error
}

func (r *FakeSchemaRepository) EnsureUsers(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.UsersCalls++
	return r.Err
}

func (r *FakeSchemaRepository) EnsureClientes(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ClientesCalls++
	return r.Err
}

// NewFakeRepositories bundles fresh fakes.
func NewFakeRepositories() (*repository.Repositories, *FakeUserRepository, *FakeClienteRepository, *FakeSchemaRepository) {
	users := NewFakeUserRepository()
	clientes := NewFakeClienteRepository()
	schema := &FakeSchemaRepository{}
	return &repository.Repositories{User: users, Cliente: clientes, Schema: schema}, users, clientes, schema
}
