package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/auth"
	"github.com/dmitrijs2005/finances/internal/server/config"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService verifies credentials and issues JWT access tokens plus
// server-stored refresh tokens.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	accounts                     *AccountService
	hasher                       Hasher
	log                          logging.Logger
	clock                        clock
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, accounts *AccountService, hasher Hasher,
	cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		accounts:                     accounts,
		hasher:                       hasher,
		log:                          log,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login checks the password against the stored hash and returns a new
// TokenPair. Unknown emails and wrong passwords both yield
// common.ErrorUnauthorized; a correct password on an account that was never
// activated yields common.ErrAccountInactive.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	subject, err := s.accounts.LoadCredentialSubject(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrSubjectNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if !s.hasher.Compare(subject.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	if !subject.Active {
		return nil, common.ErrAccountInactive
	}

	return s.generateTokenPair(ctx, subject.UserID, s.db)
}

// RefreshToken rotates refreshToken in one transaction and returns a fresh
// TokenPair. Unknown tokens yield common.ErrInvalidToken, expired ones
// common.ErrRefreshTokenExpired.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		token, err := repo.FindForUpdate(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}
		if token.Expired(s.clock.now()) {
			return common.ErrRefreshTokenExpired
		}

		if err := repo.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		if _, err := s.repomanager.Users(tx).FindActiveByID(ctx, token.UserID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error searching user: %w", err)
		}

		pair, err = s.generateTokenPair(ctx, token.UserID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = s.repomanager.RefreshTokens(tx).Create(ctx, &models.RefreshToken{
		UserID:    userID,
		Token:     refresh,
		ExpiresAt: s.clock.now().Add(s.refreshTokenValidityDuration),
	})
	if err != nil {
		s.log.Error(ctx, "storing refresh token failed", "user_id", userID, "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
