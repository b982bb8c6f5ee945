package extractions

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"idscan-backend/internal/extract"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts the record as a new row in extracted_data.
func (r *PGRepo) Append(ctx context.Context, rec extract.Record) error {
	const query = `
INSERT INTO extracted_data (
    id,
    document_type,
    confidence,
    id_number,
    first_name,
    middle_name,
    last_name,
    date_of_birth,
    sex,
    nationality,
    issued_date,
    expiry_date,
    address,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		uuid.NewString(),
		rec.DocumentType,
		rec.Confidence,
		nullable(rec.IDNumber),
		nullable(rec.FirstName),
		nullable(rec.MiddleName),
		nullable(rec.LastName),
		nullable(rec.DateOfBirth),
		nullable(rec.Sex),
		nullable(rec.Nationality),
		nullable(rec.IssuedDate),
		nullable(rec.ExpiryDate),
		nullable(rec.Address),
		time.Now().UTC(),
	)
	return err
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
