package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// View is the screen the session should present.
type View int

const (
	ViewLogin View = iota
	ViewMain
)

func (v View) String() string {
	switch v {
	case ViewMain:
		return "main"
	default:
		return "login"
	}
}

// Session holds the current token and identity. It never retries and never
// refreshes tokens; a server rejection only takes effect on the next Restore.
type Session struct {
	api      *Client
	store    TokenStore
	token    string
	user     *User
	clientes []Cliente
}

func NewSession(api *Client, store TokenStore) *Session {
	return &Session{api: api, store: store}
}

func (s *Session) User() *User {
	return s.user
}

func (s *Session) Token() string {
	return s.token
}

// Loaded returns the list fetched by the last Clientes call.
func (s *Session) Loaded() []Cliente {
	return s.clientes
}

// Restore validates a stored token against /me. On success the identity is
// adopted and the clientes list loaded; on any failure the token is cleared.
func (s *Session) Restore(ctx context.Context) (View, error) {
	token, err := s.store.Load()
	if err != nil {
		s.reset()
		if clearErr := s.store.Clear(); clearErr != nil {
			return ViewLogin, errors.Join(err, clearErr)
		}
		return ViewLogin, err
	}
	if token == "" {
		s.reset()
		return ViewLogin, nil
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		s.reset()
		if clearErr := s.store.Clear(); clearErr != nil {
			return ViewLogin, clearErr
		}
		return ViewLogin, nil
	}

	s.token = token
	s.user = user
	s.Clientes(ctx)
	return ViewMain, nil
}

// Login returns the server's message unchanged when credentials are rejected.
func (s *Session) Login(ctx context.Context, email, password string) error {
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.store.Save(result.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	s.token = result.Token
	s.user = &result.User
	s.Clientes(ctx)
	return nil
}

func (s *Session) Logout() error {
	s.reset()
	return s.store.Clear()
}

// Clientes reloads the list. Any failure leaves an empty list.
func (s *Session) Clientes(ctx context.Context) ([]Cliente, error) {
	if s.token == "" {
		s.clientes = []Cliente{}
		return s.clientes, nil
	}

	clientes, err := s.api.ListClientes(ctx, s.token)
	if err != nil || clientes == nil {
		s.clientes = []Cliente{}
		return s.clientes, err
	}
	s.clientes = clientes
	return s.clientes, nil
}

// AddCliente ignores blank names without calling the server.
func (s *Session) AddCliente(ctx context.Context, nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return nil
	}
	_, err := s.api.CreateCliente(ctx, s.token, nombre)
	s.Clientes(ctx)
	return err
}

func (s *Session) DeleteCliente(ctx context.Context, id string) error {
	err := s.api.DeleteCliente(ctx, s.token, id)
	s.Clientes(ctx)
	return err
}

func (s *Session) reset() {
	s.token = ""
	s.user = nil
	s.clientes = []Cliente{}
}
