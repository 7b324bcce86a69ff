package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration. Login accepts
	// hashes of any cost.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewAccountValidator(),
		passwordHashCost: cost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and lower-cased before it is checked for uniqueness.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrValidationFailed if name, email or password is missing or the email
//     is not an address.
//   - ErrEmailAlreadyExists if the email is taken.
//   - ErrStorageUnavailable for any other store failure.
func (a *authService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	request := models.SignupRequest{Name: name, Email: email, Password: password}
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "authService.RegisterUser").Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("email already registered")
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		log.Warn().Err(err).Str("func", "authService.Login").Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "authService.Login").Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Info().
			Str("func", "authService.Login").
			Int64("id", foundUser.UserID).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature, malformed)
// is normalised to ErrUnauthenticated so that callers cannot tell the causes
// apart.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrUnauthenticated
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrUnauthenticated
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
