package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClienteService struct {
	clienteRepo repository.ClienteRepository
	log         *zap.Logger
}

func NewClienteService(clienteRepo repository.ClienteRepository, log *zap.Logger) *ClienteService {
	return &ClienteService{
		clienteRepo: clienteRepo,
		log:         log,
	}
}

func (s *ClienteService) List(ctx context.Context) ([]*domain.Cliente, error) {
	clientes, err := s.clienteRepo.List(ctx)
	if err != nil {
		s.log.Error("[ClienteService.List] failed to list clientes", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return clientes, nil
}

func (s *ClienteService) Create(ctx context.Context, nombre string) (*domain.Cliente, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.ErrMissingFields
	}
	if utf8.RuneCountInString(nombre) > domain.MaxNombreLength {
		return nil, domain.ErrNombreTooLong
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	cliente := &domain.Cliente{
		ID:     id,
		Nombre: nombre,
	}
	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		s.log.Error("[ClienteService.Create] failed to create cliente", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return cliente, nil
}

// Delete succeeds whether or not the id exists. An id that does not parse
// cannot name a stored row, so it is a no-op.
func (s *ClienteService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.log.Debug("[ClienteService.Delete] ignoring unparseable id", zap.String("id", rawID))
		return nil
	}

	if err := s.clienteRepo.Delete(ctx, id); err != nil {
		s.log.Error("[ClienteService.Delete] failed to delete cliente", zap.String("id", rawID), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return nil
}
