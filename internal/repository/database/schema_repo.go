package database

import (
	"context"
	"fmt"

	"github.com/dom/floricola-erp/internal/domain"
	"gorm.io/gorm"
)

type schemaRepository struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) *schemaRepository {
	return &schemaRepository{db: db}
}

func (r *schemaRepository) EnsureUsers(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (r *schemaRepository) EnsureClientes(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.Cliente{}); err != nil {
		return fmt.Errorf("migrate clientes: %w", err)
	}
	return nil
}
