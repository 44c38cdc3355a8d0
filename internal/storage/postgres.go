package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact_service/internal/models"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	usersTable    = "users"
	contactsTable = "contacts"
)

const uniqueViolationCode = "23505"

type PostgresStorage struct {
	db *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dbURL string) (*PostgresStorage, error) {
	const op = "storage.NewPostgresStorage"

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	conn, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostgresStorage{
		db: conn,
	}, nil
}

func (p *PostgresStorage) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	const op = "storage.CreateUser"

	var userID uuid.UUID
	query := fmt.Sprintf("INSERT INTO %s(name, email, password_hash) VALUES ($1, $2, $3) RETURNING id;", usersTable)

	err := p.db.QueryRow(ctx, query, name, email, passwordHash).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return userID, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return userID, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

func (p *PostgresStorage) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "storage.GetUserByID"

	var user models.User
	query := fmt.Sprintf("SELECT id, name, email, created_at FROM %s WHERE id=$1;", usersTable)

	err := p.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return user, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (p *PostgresStorage) GetCredentialsByEmail(ctx context.Context, email string) (models.Credentials, error) {
	const op = "storage.GetCredentialsByEmail"

	var cred models.Credentials
	query := fmt.Sprintf("SELECT id, password_hash FROM %s WHERE email=$1;", usersTable)

	err := p.db.QueryRow(ctx, query, email).Scan(&cred.UserID, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cred, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return cred, fmt.Errorf("%s: %w", op, err)
	}

	return cred, nil
}

func (p *PostgresStorage) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const op = "storage.CreateContact"

	query := fmt.Sprintf(`INSERT INTO %s(user_id, name, email, phone, type)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, user_id, name, email, phone, type, created_at;`, contactsTable)

	var created models.Contact
	err := p.db.QueryRow(ctx, query,
		contact.OwnerID, contact.Name, contact.Email, contact.Phone, contact.Type,
	).Scan(
		&created.ID, &created.OwnerID, &created.Name, &created.Email, &created.Phone, &created.Type, &created.Date,
	)
	if err != nil {
		return created, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (p *PostgresStorage) ListContactsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Contact, error) {
	const op = "storage.ListContactsByOwner"

	var contacts []models.Contact
	query := fmt.Sprintf(`SELECT id, user_id, name, email, phone, type, created_at
	FROM %s WHERE user_id=$1 ORDER BY created_at DESC;`, contactsTable)

	rows, err := p.db.Query(ctx, query, ownerID)
	if err != nil {
		return contacts, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var contact models.Contact

		err := rows.Scan(&contact.ID, &contact.OwnerID, &contact.Name, &contact.Email, &contact.Phone, &contact.Type, &contact.Date)
		if err != nil {
			return contacts, fmt.Errorf("%s: %w", op, err)
		}

		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s (rows): %w", op, err)
	}

	return contacts, nil
}

func (p *PostgresStorage) GetContactByID(ctx context.Context, contactID uuid.UUID) (models.Contact, error) {
	const op = "storage.GetContactByID"

	var contact models.Contact
	query := fmt.Sprintf("SELECT id, user_id, name, email, phone, type, created_at FROM %s WHERE id=$1;", contactsTable)

	err := p.db.QueryRow(ctx, query, contactID).Scan(
		&contact.ID, &contact.OwnerID, &contact.Name, &contact.Email, &contact.Phone, &contact.Type, &contact.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact, fmt.Errorf("%s: %w", op, ErrContactNotFound)
		}
		return contact, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

func (p *PostgresStorage) UpdateContact(ctx context.Context, contactID uuid.UUID, upd models.ContactUpdate) (models.Contact, error) {
	const op = "storage.UpdateContact"

	query := fmt.Sprintf(`UPDATE %s
	   SET name = COALESCE($2, name),
	       email = COALESCE($3, email),
	       phone = COALESCE($4, phone),
	       type = COALESCE($5, type)
	 WHERE id = $1
	RETURNING id, user_id, name, email, phone, type, created_at;`, contactsTable)

	var contact models.Contact
	err := p.db.QueryRow(ctx, query, contactID, upd.Name, upd.Email, upd.Phone, upd.Type).Scan(
		&contact.ID, &contact.OwnerID, &contact.Name, &contact.Email, &contact.Phone, &contact.Type, &contact.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact, fmt.Errorf("%s: %w", op, ErrContactNotFound)
		}
		return contact, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

func (p *PostgresStorage) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	const op = "storage.DeleteContact"

	query := fmt.Sprintf("DELETE FROM %s WHERE id=$1;", contactsTable)

	tag, err := p.db.Exec(ctx, query, contactID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}

	return nil
}

func (p *PostgresStorage) Close() {
	p.db.Close()
}
