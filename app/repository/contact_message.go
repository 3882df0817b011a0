package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-website/app/entity"
)

var (
	ErrContactMessageNotFound      = errors.New("contact message not found")
	ErrContactMessageAlreadyExists = errors.New("contact message already exists")
)

type ContactMessageRepository struct {
	db DBTX
}

func NewContactMessageRepository(db DBTX) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			reference_id, name, email, company, subject, message, remote_ip, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		message.ReferenceID,
		message.Name,
		message.Email,
		nullableStringValue(message.Company),
		message.Subject,
		message.Message,
		message.RemoteIP,
		message.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrContactMessageAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	message.ID = uint64(id)
	return nil
}

func (r *ContactMessageRepository) FindByReferenceID(ctx context.Context, referenceID string) (*entity.ContactMessage, error) {
	query := `
		SELECT id, reference_id, name, email, company, subject, message, remote_ip, created_at
		FROM contact_messages
		WHERE reference_id = ?
	`

	item := &entity.ContactMessage{}
	if err := scanContactMessage(r.db.QueryRowContext(ctx, query, referenceID), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *ContactMessageRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, reference_id, name, email, company, subject, message, remote_ip, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.ContactMessage, 0)
	for rows.Next() {
		item := &entity.ContactMessage{}
		if err := scanContactMessage(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ContactMessageRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanContactMessage(scanner rowScanner, item *entity.ContactMessage) error {
	var company sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.ReferenceID,
		&item.Name,
		&item.Email,
		&company,
		&item.Subject,
		&item.Message,
		&item.RemoteIP,
		&item.CreatedAt,
	)
	if err != nil {
		return err
	}

	if company.Valid {
		item.Company = &company.String
	} else {
		item.Company = nil
	}
	return nil
}
