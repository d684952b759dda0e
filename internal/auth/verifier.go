package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/velmora/pos-backoffice/internal/apperr"
)

// CredentialVerifier re-authenticates an administrator credential. Voiding a
// sale line requires a live admin password, not just a role header.
type CredentialVerifier interface {
	VerifyAdmin(ctx context.Context, username, password string) error
}

type PGCredentialVerifier struct {
	DB *sqlx.DB
}

func NewPGCredentialVerifier(db *sqlx.DB) *PGCredentialVerifier {
	return &PGCredentialVerifier{DB: db}
}

var errBadCredential = apperr.New(apperr.KindPermissionDenied,
	"administrator credential rejected or user lacks permission")

func (v *PGCredentialVerifier) VerifyAdmin(ctx context.Context, username, password string) error {
	var row struct {
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
		Active       bool   `db:"active"`
	}
	err := v.DB.GetContext(ctx, &row,
		`SELECT password_hash, role, active FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errBadCredential
		}
		return err
	}
	if !row.Active || row.Role != RoleAdmin {
		return errBadCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return errBadCredential
	}
	return nil
}
