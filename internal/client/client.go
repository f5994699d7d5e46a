package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non-2xx answer from the server, carrying its "error" string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Cliente struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client handles HTTP communication with the backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, "", &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// InitSchema creates both tables on the server.
func (c *Client) InitSchema(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/init-users", nil, "", nil); err != nil {
		return fmt.Errorf("init users: %w", err)
	}
	if err := c.do(ctx, http.MethodGet, "/init", nil, "", nil); err != nil {
		return fmt.Errorf("init clientes: %w", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, email, password, role string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/me", nil, token, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListClientes(ctx context.Context, token string) ([]Cliente, error) {
	var clientes []Cliente
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, token, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *Client) CreateCliente(ctx context.Context, token, nombre string) (*Cliente, error) {
	var cliente Cliente
	if err := c.do(ctx, http.MethodPost, "/clientes", map[string]string{"nombre": nombre}, token, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) DeleteCliente(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/clientes/"+url.PathEscape(id), nil, token, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
