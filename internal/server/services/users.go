package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/logging"
	"github.com/mango-services/loyalty-auth/internal/server/auth"
	"github.com/mango-services/loyalty-auth/internal/server/config"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/repomanager"
	"github.com/mango-services/loyalty-auth/internal/timex"
)

// refreshTokenSize is the number of random bytes in a refresh token.
const refreshTokenSize = 64

// AuthResult is returned by every operation that opens a session.
type AuthResult struct {
	UserID       string
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.AuthRepositories
	jwtSecret                    []byte
	issuer                       string
	audience                     string
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	clock                        timex.Clock
	random                       io.Reader
	logger                       logging.Logger

	// dummyHash is verified against when the email is unknown so that a miss
	// costs the same KDF work as a wrong password.
	dummyHash string
	dummySalt string
}

// NewUserService builds the credential service. A nil clock uses the system
// clock and a nil random uses crypto/rand.
func NewUserService(db *sql.DB, m repomanager.AuthRepositories, cfg *config.Config,
	clock timex.Clock, random io.Reader, logger logging.Logger) *UserService {

	if clock == nil {
		clock = timex.SystemClock{}
	}
	if random == nil {
		random = rand.Reader
	}

	dummySalt := "bm90LWEtcmVhbC1zYWx0IQ=="

	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		issuer:                       cfg.JWTIssuer,
		audience:                     cfg.JWTAudience,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		clock:                        clock,
		random:                       random,
		logger:                       logger.With("module", "users"),
		dummyHash:                    auth.HashPassword("", dummySalt),
		dummySalt:                    dummySalt,
	}
}

// Register creates a Customer account and opens its first session.
func (s *UserService) Register(ctx context.Context, email, password, name, phone string) (*AuthResult, error) {

	salt, err := auth.GenerateSalt(s.random)
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PhoneNumber:  phone,
		PasswordHash: auth.HashPassword(password, salt),
		Salt:         salt,
		Role:         common.RoleCustomer,
		IsActive:     true,
		CreatedAt:    s.clock.Now(),
	}

	var result *AuthResult

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}

		var err error
		result, err = s.issueTokens(ctx, tx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.logger.Warn(ctx, "registration rejected, email taken", "email", email)
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "email", email)

	return result, nil
}

// Login opens a new session. Unknown email, wrong password and inactive
// account all yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(password, s.dummyHash, s.dummySalt)
			s.logger.Warn(ctx, "login failed", "email", email, "reason", "unknown email")
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash, user.Salt) {
		s.logger.Warn(ctx, "login failed", "email", email, "reason", "bad password")
		return nil, common.ErrorUnauthorized
	}

	if !user.IsActive {
		s.logger.Warn(ctx, "login failed", "email", email, "reason", "inactive")
		return nil, common.ErrorUnauthorized
	}

	result, err := s.issueTokens(ctx, s.db, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)

	return result, nil
}

// RefreshToken consumes refreshToken and opens a new session for its owner.
// The access token is accepted for compatibility and is not inspected.
func (s *UserService) RefreshToken(ctx context.Context, accessToken, refreshToken string) (*AuthResult, error) {

	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if token.Used || token.Revoked || token.Expired(s.clock.Now()) {
		s.logger.Warn(ctx, "refresh rejected", "token_id", token.ID, "used", token.Used,
			"revoked", token.Revoked, "expires_at", token.ExpiresAt)
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	if !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	var result *AuthResult

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).MarkUsed(ctx, token.ID); err != nil {
			return err
		}

		var err error
		result, err = s.issueTokens(ctx, tx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "refresh token consumed concurrently", "token_id", token.ID)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}

	s.logger.Info(ctx, "token refreshed", "user_id", user.ID)

	return result, nil
}

// issueTokens mints an access token and persists a fresh refresh token
// through db.
func (s *UserService) issueTokens(ctx context.Context, db dbx.DBTX, user *models.User) (*AuthResult, error) {
	now := s.clock.Now()
	jti := uuid.NewString()

	accessToken, err := auth.GenerateToken(auth.TokenParams{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		Name:     user.Name,
		JTI:      jti,
		Issuer:   s.issuer,
		Audience: s.audience,
		IssuedAt: now,
		Validity: s.accessTokenValidityDuration,
	}, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("error signing access token: %w", err)
	}

	refreshToken, err := common.MakeRandBase64String(s.random, refreshTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	err = s.repomanager.RefreshTokens(db).Create(ctx, &models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		JwtID:     jti,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.refreshTokenValidityDuration),
	})
	if err != nil {
		return nil, fmt.Errorf("error saving refresh token: %w", err)
	}

	return &AuthResult{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
