package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contact_service/internal/auth"
	"contact_service/internal/lib/logger/sl"
	"contact_service/internal/models"
	"contact_service/internal/storage"

	"github.com/gofrs/uuid"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrContactNotFound    = errors.New("contact not found")
	ErrNotOwner           = errors.New("not authorized")
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (uuid.UUID, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	ListContacts(ctx context.Context, ownerID uuid.UUID) ([]models.Contact, error)
	CreateContact(ctx context.Context, ownerID uuid.UUID, name, email, phone, contactType string) (models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID uuid.UUID, upd models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID uuid.UUID) error
}

type service struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewService(lgr *slog.Logger, st storage.Storage) *service {
	return &service{
		log:     lgr,
		storage: st,
	}
}

// Register hashes the password and persists a new user. A taken email fails
// with ErrUserExists before anything is written.
func (s *service) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	const op = "service.Register"

	_, err := s.storage.GetCredentialsByEmail(ctx, email)
	if err == nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.storage.CreateUser(ctx, name, email, passwordHash)
	if err != nil {
		// the unique index can still fire between lookup and insert
		if errors.Is(err, storage.ErrUserExists) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("op", op), slog.String("user_id", id.String()))

	return id, nil
}

// Login verifies the email/password pair. Unknown emails and wrong passwords
// fail the same way so callers cannot tell which one was off.
func (s *service) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	const op = "service.Login"

	cred, err := s.storage.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.log.Warn("login for unknown email", slog.String("op", op))
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		s.log.Error("failed to get credentials", slog.String("op", op), sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if ok := auth.CheckPasswordHash(cred.PasswordHash, password); !ok {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return cred.UserID, nil
}

func (s *service) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "service.GetUserByID"

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
