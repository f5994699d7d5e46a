package service

import (
	"context"
	"fmt"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/repository"
	"go.uber.org/zap"
)

type SchemaService struct {
	schemaRepo repository.SchemaRepository
	log        *zap.Logger
}

func NewSchemaService(schemaRepo repository.SchemaRepository, log *zap.Logger) *SchemaService {
	return &SchemaService{schemaRepo: schemaRepo, log: log}
}

func (s *SchemaService) InitUsers(ctx context.Context) error {
	if err := s.schemaRepo.EnsureUsers(ctx); err != nil {
		s.log.Error("[SchemaService.InitUsers] failed", zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	s.log.Info("[SchemaService.InitUsers] users table ready")
	return nil
}

func (s *SchemaService) InitClientes(ctx context.Context) error {
	if err := s.schemaRepo.EnsureClientes(ctx); err != nil {
		s.log.Error("[SchemaService.InitClientes] failed", zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	s.log.Info("[SchemaService.InitClientes] clientes table ready")
	return nil
}
