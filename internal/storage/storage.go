package storage

import (
	"context"
	"errors"

	"contact_service/internal/models"

	"github.com/gofrs/uuid"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrContactNotFound = errors.New("contact not found")
)

type Storage interface {
	// Пользователи и аутентификация
	CreateUser(ctx context.Context, name, email, passwordHash string) (userID uuid.UUID, err error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (models.Credentials, error)

	// Контакты
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContactsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Contact, error)
	GetContactByID(ctx context.Context, contactID uuid.UUID) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID uuid.UUID, upd models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) error

	Close()
}
