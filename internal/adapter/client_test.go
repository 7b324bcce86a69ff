// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestClient(t *testing.T, serverURL string) *VaultClient {
	t.Helper()
	c, err := NewVaultClient(serverURL, 0, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: " https://vault.example.com/ ", want: "https://vault.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewVaultClient_InvalidAddress(t *testing.T) {
	_, err := NewVaultClient("", 0, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestSignup_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: "tok-1", User: models.User{UserID: 1, Email: "a@x.com"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	user, err := c.Signup(context.Background(), "Alice", "a@x.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "tok-1", c.Token())
}

func TestLogin_Failure_KeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("previous")

	_, err := c.Login(context.Background(), "a@x.com", "bad")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Equal(t, "previous", c.Token())
}

func TestAuthedRequests_SendBearerToken(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"id-1","password":"p2"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok-1")

	updated, err := c.Update(context.Background(), "id-1", models.CredentialInput{Password: "p2"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "/api/passwords/id-1", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "p2", updated.Password)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"validation failed"}`, wantErr: ErrBadRequest, wantMsg: "validation failed"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Not authorized"}`, wantErr: ErrUnauthorized, wantMsg: "Not authorized"},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Password not found"}`, wantErr: ErrNotFound, wantMsg: "Password not found"},
		{name: "conflict", status: http.StatusConflict, body: `{"message":"User already exists"}`, wantErr: ErrConflict},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"Server error"}`, wantErr: ErrServerError},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, wantErr: ErrServerError, wantMsg: "Gateway Timeout"},
		{name: "plain text body", status: http.StatusTeapot, body: "short and stout", wantMsg: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(t, srv.URL).Delete(context.Background(), "x")

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list request")
}
