package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/finances/internal/validation"
	"github.com/google/uuid"
)

const emailConstraint = "users_email_key"

// AccountService governs a user from registration to activation and
// handles password recovery.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codes       *CodeManager
	contacts    *ContactGraph
	hasher      Hasher
	notifier    Notifier
	log         logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, codes *CodeManager, contacts *ContactGraph,
	hasher Hasher, notifier Notifier, log logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		codes:       codes,
		contacts:    contacts,
		hasher:      hasher,
		notifier:    notifier,
		log:         log,
	}
}

func validateDraft(d *models.UserDraft) error {
	if err := validation.ValidateEmail(d.Email); err != nil {
		return err
	}
	if err := validation.ValidateName("first_name", d.FirstName); err != nil {
		return err
	}
	if err := validation.ValidateName("last_name", d.LastName); err != nil {
		return err
	}
	return validation.ValidatePassword(d.Password)
}

// CreateAccount registers an inactive user and mails an activation code.
// The notification is sent only after the user and code are committed.
func (s *AccountService) CreateAccount(ctx context.Context, draft models.UserDraft) (*models.User, error) {
	draft.Email = validation.NormalizeEmail(draft.Email)
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	_, err := s.repomanager.Users(s.db).FindByEmail(ctx, draft.Email)
	if err == nil {
		return nil, common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(draft.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	if hash == draft.Password {
		return nil, common.ErrorInternal
	}

	var user *models.User
	var codeID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:        draft.Email,
			FirstName:    draft.FirstName,
			LastName:     draft.LastName,
			PasswordHash: hash,
		})
		if err != nil {
			if dbx.IsUniqueViolation(err, emailConstraint) {
				return common.ErrDuplicateEmail
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		codeID, err = s.codes.Issue(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account created", "user_id", user.ID)
	if err := s.notifier.SendActivation(ctx, user, codeID); err != nil {
		s.log.Error(ctx, "activation notification failed", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// ActivateAccount marks the code's user active. The code is looked up by id
// only, so a code that was already invalidated still activates. The code is
// invalidated and the user's contact identity created in the same
// transaction. For a user that is already active the code is left alone, so
// an outstanding recovery code stays usable.
func (s *AccountService) ActivateAccount(ctx context.Context, codeID string) (*models.User, error) {
	if _, err := uuid.Parse(codeID); err != nil {
		return nil, common.ErrInvalidCode
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		code, err := s.findCode(ctx, tx, codeID)
		if err != nil {
			return err
		}

		user, err = s.repomanager.Users(tx).FindByID(ctx, code.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidCode
			}
			return fmt.Errorf("error searching user: %w", err)
		}

		if !user.Active {
			user.Active = true
			if err := s.repomanager.Users(tx).Update(ctx, user); err != nil {
				return fmt.Errorf("error activating user: %w", err)
			}
			if err := s.codes.Invalidate(ctx, tx, code); err != nil {
				return err
			}
		}

		_, err = s.contacts.EnsureIdentity(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account activated", "user_id", user.ID)
	return user, nil
}

// InitiatePasswordRecovery mails a recovery code to an active user. Unknown
// or inactive emails are silently ignored.
func (s *AccountService) InitiatePasswordRecovery(ctx context.Context, email string) error {
	email = validation.NormalizeEmail(email)

	user, err := s.repomanager.Users(s.db).FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Debug(ctx, "password recovery for unknown email ignored")
			return nil
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	codeID, err := s.codes.IssueCode(ctx, user.ID)
	if err != nil {
		// the concurrent request that won mails its own code
		if errors.Is(err, common.ErrCodeAlreadyIssued) {
			s.log.Debug(ctx, "concurrent password recovery ignored", "user_id", user.ID)
			return nil
		}
		return err
	}

	if err := s.notifier.SendRecovery(ctx, user, codeID); err != nil {
		s.log.Error(ctx, "recovery notification failed", "user_id", user.ID, "error", err)
	}

	return nil
}

// ResetPassword completes recovery. Unlike activation the code has to be
// valid; it is invalidated together with the password change.
func (s *AccountService) ResetPassword(ctx context.Context, codeID, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}
	if _, err := uuid.Parse(codeID); err != nil {
		return common.ErrInvalidCode
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	var userID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		code, err := s.findCode(ctx, tx, codeID)
		if err != nil {
			return err
		}
		if !code.Valid {
			return common.ErrInvalidCode
		}

		user, err := s.repomanager.Users(tx).FindByID(ctx, code.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidCode
			}
			return fmt.Errorf("error searching user: %w", err)
		}

		user.PasswordHash = hash
		if err := s.repomanager.Users(tx).Update(ctx, user); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}
		userID = user.ID

		return s.codes.Invalidate(ctx, tx, code)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password reset", "user_id", userID)
	return nil
}

// LoadCredentialSubject returns what Login needs to authenticate email.
func (s *AccountService) LoadCredentialSubject(ctx context.Context, email string) (*models.CredentialSubject, error) {
	user, err := s.repomanager.Users(s.db).FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return &models.CredentialSubject{
		UserID:       user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Active:       user.Active,
	}, nil
}

func (s *AccountService) findCode(ctx context.Context, tx dbx.DBTX, codeID string) (*models.VerificationCode, error) {
	code, err := s.repomanager.Codes(tx).FindByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCode
		}
		return nil, fmt.Errorf("error searching code: %w", err)
	}
	return code, nil
}
