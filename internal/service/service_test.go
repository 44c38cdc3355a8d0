package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"contact_service/internal/models"
	"contact_service/internal/storage"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*service, *storage.MemoryStorage) {
	t.Helper()

	st := storage.NewMemoryStorage()
	lgr := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(lgr, st), st
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srvc, st := newTestService(t)
	ctx := context.Background()
	email := gofakeit.Email()

	firstID, err := srvc.Register(ctx, gofakeit.Name(), email, "secret123")
	require.NoError(t, err)

	_, err = srvc.Register(ctx, gofakeit.Name(), email, "another456")
	assert.ErrorIs(t, err, ErrUserExists)

	// the original record is untouched
	cred, err := st.GetCredentialsByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, firstID, cred.UserID)

	loggedInID, err := srvc.Login(ctx, email, "secret123")
	require.NoError(t, err)
	assert.Equal(t, firstID, loggedInID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	srvc, _ := newTestService(t)

	_, err := srvc.Login(context.Background(), gofakeit.Email(), "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	srvc, _ := newTestService(t)
	ctx := context.Background()
	email := gofakeit.Email()

	_, err := srvc.Register(ctx, gofakeit.Name(), email, "secret123")
	require.NoError(t, err)

	_, err = srvc.Login(ctx, email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateContact_DefaultType(t *testing.T) {
	srvc, _ := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	contact, err := srvc.CreateContact(ctx, ownerID, "Alice", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "personal", contact.Type)
	assert.Equal(t, ownerID, contact.OwnerID)
	assert.False(t, contact.Date.IsZero())
}

func TestUpdateContact_PartialUpdate(t *testing.T) {
	srvc, _ := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	contact, err := srvc.CreateContact(ctx, ownerID, "A", "", "1", "personal")
	require.NoError(t, err)

	phone := "2"
	updated, err := srvc.UpdateContact(ctx, ownerID, contact.ID, models.ContactUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "2", updated.Phone)
	assert.Equal(t, "personal", updated.Type)
}

func TestUpdateContact_NotOwner(t *testing.T) {
	srvc, st := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)
	otherID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	contact, err := srvc.CreateContact(ctx, ownerID, "Alice", "", "1", "")
	require.NoError(t, err)

	name := "Mallory"
	_, err = srvc.UpdateContact(ctx, otherID, contact.ID, models.ContactUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotOwner)

	// the record is unchanged
	stored, err := st.GetContactByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
}

func TestDeleteContact_NotOwner(t *testing.T) {
	srvc, st := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)
	otherID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	contact, err := srvc.CreateContact(ctx, ownerID, "Alice", "", "1", "")
	require.NoError(t, err)

	err = srvc.DeleteContact(ctx, otherID, contact.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = st.GetContactByID(ctx, contact.ID)
	assert.NoError(t, err)
}

func TestContact_NotFound(t *testing.T) {
	srvc, _ := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	missingID, err := uuid.NewV4()
	require.NoError(t, err)

	_, err = srvc.UpdateContact(ctx, ownerID, missingID, models.ContactUpdate{})
	assert.ErrorIs(t, err, ErrContactNotFound)

	err = srvc.DeleteContact(ctx, ownerID, missingID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestListContacts_OwnerScoped(t *testing.T) {
	srvc, _ := newTestService(t)
	ctx := context.Background()

	ownerID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)
	otherID, err := srvc.Register(ctx, gofakeit.Name(), gofakeit.Email(), "secret123")
	require.NoError(t, err)

	_, err = srvc.CreateContact(ctx, ownerID, "Mine", "", "", "")
	require.NoError(t, err)
	_, err = srvc.CreateContact(ctx, otherID, "Theirs", "", "", "")
	require.NoError(t, err)

	contacts, err := srvc.ListContacts(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Mine", contacts[0].Name)
}
