package service

import (
	"context"
	"errors"
	"fmt"

	"contact_service/internal/models"
	"contact_service/internal/storage"

	"github.com/gofrs/uuid"
)

const defaultContactType = "personal"

func (s *service) ListContacts(ctx context.Context, ownerID uuid.UUID) ([]models.Contact, error) {
	const op = "service.ListContacts"

	contacts, err := s.storage.ListContactsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

func (s *service) CreateContact(ctx context.Context, ownerID uuid.UUID, name, email, phone, contactType string) (models.Contact, error) {
	const op = "service.CreateContact"

	if contactType == "" {
		contactType = defaultContactType
	}

	contact, err := s.storage.CreateContact(ctx, models.Contact{
		OwnerID: ownerID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Type:    contactType,
	})
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

// UpdateContact overwrites only the fields present in upd, after the owner
// check passes.
func (s *service) UpdateContact(ctx context.Context, ownerID, contactID uuid.UUID, upd models.ContactUpdate) (models.Contact, error) {
	const op = "service.UpdateContact"

	if err := s.checkOwner(ctx, ownerID, contactID); err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	contact, err := s.storage.UpdateContact(ctx, contactID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			return models.Contact{}, fmt.Errorf("%s: %w", op, ErrContactNotFound)
		}
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

func (s *service) DeleteContact(ctx context.Context, ownerID, contactID uuid.UUID) error {
	const op = "service.DeleteContact"

	if err := s.checkOwner(ctx, ownerID, contactID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteContact(ctx, contactID); err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			return fmt.Errorf("%s: %w", op, ErrContactNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) checkOwner(ctx context.Context, ownerID, contactID uuid.UUID) error {
	contact, err := s.storage.GetContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	if contact.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
