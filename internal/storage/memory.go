package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"contact_service/internal/models"

	"github.com/gofrs/uuid"
)

// MemoryStorage keeps all records in process memory. It backs the tests and
// honors the same sentinel errors as PostgresStorage.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	creds    map[string]models.Credentials
	contacts map[uuid.UUID]models.Contact
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:    make(map[uuid.UUID]models.User),
		creds:    make(map[string]models.Credentials),
		contacts: make(map[uuid.UUID]models.Contact),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	const op = "storage.MemoryStorage.CreateUser"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.creds[email]; exists {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	m.users[id] = models.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	m.creds[email] = models.Credentials{
		UserID:       id,
		PasswordHash: passwordHash,
	}

	return id, nil
}

func (m *MemoryStorage) GetUserByID(_ context.Context, userID uuid.UUID) (models.User, error) {
	const op = "storage.MemoryStorage.GetUserByID"

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	return user, nil
}

func (m *MemoryStorage) GetCredentialsByEmail(_ context.Context, email string) (models.Credentials, error) {
	const op = "storage.MemoryStorage.GetCredentialsByEmail"

	m.mu.RLock()
	defer m.mu.RUnlock()

	cred, ok := m.creds[email]
	if !ok {
		return models.Credentials{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	return cred, nil
}

func (m *MemoryStorage) CreateContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	const op = "storage.MemoryStorage.CreateContact"

	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := uuid.NewV4()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	contact.ID = id
	if contact.Date.IsZero() {
		contact.Date = time.Now()
	}
	m.contacts[id] = contact

	return contact, nil
}

func (m *MemoryStorage) ListContactsByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var contacts []models.Contact
	for _, contact := range m.contacts {
		if contact.OwnerID == ownerID {
			contacts = append(contacts, contact)
		}
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Date.After(contacts[j].Date)
	})

	return contacts, nil
}

func (m *MemoryStorage) GetContactByID(_ context.Context, contactID uuid.UUID) (models.Contact, error) {
	const op = "storage.MemoryStorage.GetContactByID"

	m.mu.RLock()
	defer m.mu.RUnlock()

	contact, ok := m.contacts[contactID]
	if !ok {
		return models.Contact{}, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}

	return contact, nil
}

func (m *MemoryStorage) UpdateContact(_ context.Context, contactID uuid.UUID, upd models.ContactUpdate) (models.Contact, error) {
	const op = "storage.MemoryStorage.UpdateContact"

	m.mu.Lock()
	defer m.mu.Unlock()

	contact, ok := m.contacts[contactID]
	if !ok {
		return models.Contact{}, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}

	if upd.Name != nil {
		contact.Name = *upd.Name
	}
	if upd.Email != nil {
		contact.Email = *upd.Email
	}
	if upd.Phone != nil {
		contact.Phone = *upd.Phone
	}
	if upd.Type != nil {
		contact.Type = *upd.Type
	}
	m.contacts[contactID] = contact

	return contact, nil
}

func (m *MemoryStorage) DeleteContact(_ context.Context, contactID uuid.UUID) error {
	const op = "storage.MemoryStorage.DeleteContact"

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[contactID]; !ok {
		return fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}
	delete(m.contacts, contactID)

	return nil
}

func (m *MemoryStorage) Close() {}
