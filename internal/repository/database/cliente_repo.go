package database

import (
	"context"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *clienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	return translate(r.db.WithContext(ctx).Create(cliente).Error)
}

func (r *clienteRepository) List(ctx context.Context) ([]*domain.Cliente, error) {
	clientes := []*domain.Cliente{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&clientes).Error
	if err != nil {
		return nil, translate(err)
	}
	return clientes, nil
}

func (r *clienteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Cliente{}, "id = ?", id).Error)
}
