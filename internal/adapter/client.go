// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed HTTP client for the vault API.
//
// [VaultClient] holds the session token explicitly: Signup and Login store
// it, every credential call sends it as a bearer token. Non-2xx responses are
// mapped to the sentinel errors in errors.go.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type VaultClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewVaultClient returns a client for the server at address. A missing
// scheme defaults to http.
func NewVaultClient(address string, timeout time.Duration, logger *logger.Logger) (*VaultClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &VaultClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken replaces the bearer token sent with credential calls.
func (c *VaultClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *VaultClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup registers an account and keeps the returned token.
func (c *VaultClient) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/signup", models.SignupRequest{Name: name, Email: email, Password: password})
}

// Login authenticates and keeps the returned token.
func (c *VaultClient) Login(ctx context.Context, email, password string) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", models.LoginRequest{Email: email, Password: password})
}

func (c *VaultClient) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var auth models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(auth.Token)
	c.logger.Debug().Int64("user_id", auth.User.UserID).Msg("session token stored")

	return auth.User, nil
}

// List returns the caller's credentials, newest first.
func (c *VaultClient) List(ctx context.Context) ([]models.Credential, error) {
	var credentials []models.Credential

	resp, err := c.authedRequest(ctx).
		SetResult(&credentials).
		Get("/api/passwords")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return credentials, nil
}

func (c *VaultClient) Create(ctx context.Context, input models.CredentialInput) (models.Credential, error) {
	var created models.Credential

	resp, err := c.authedRequest(ctx).
		SetBody(input).
		SetResult(&created).
		Post("/api/passwords")
	if err != nil {
		return models.Credential{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return created, nil
}

// Update replaces all mutable fields of credential id.
func (c *VaultClient) Update(ctx context.Context, id string, input models.CredentialInput) (models.Credential, error) {
	var updated models.Credential

	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(input).
		SetResult(&updated).
		Put("/api/passwords/{id}")
	if err != nil {
		return models.Credential{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return updated, nil
}

func (c *VaultClient) Delete(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/passwords/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *VaultClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
