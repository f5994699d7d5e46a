package service

import (
	"github.com/dom/floricola-erp/internal/auth"
	"github.com/dom/floricola-erp/internal/config"
	"github.com/dom/floricola-erp/internal/metrics"
	"github.com/dom/floricola-erp/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Auth     *AuthService
	Clientes *ClienteService
	Schema   *SchemaService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*Services, error) {
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:     NewAuthService(repos.User, hasher, tokens, log, m),
		Clientes: NewClienteService(repos.Cliente, log),
		Schema:   NewSchemaService(repos.Schema, log),
	}, nil
}
