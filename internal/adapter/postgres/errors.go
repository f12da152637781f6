package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// PostgreSQL error codes the adapter reacts to.
const (
	codeCheckViolation     = "23514"
	codeInvalidTextRepr    = "22P02"
	codeInvalidRegex       = "2201B"
	codeUntranslatableChar = "22021"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and key that was being accessed.
// context.DeadlineExceeded and context.Canceled are not mapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrValidation)
		case codeInvalidTextRepr, codeInvalidRegex, codeUntranslatableChar:
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.Message, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// IsInvalidRegex reports whether err is PostgreSQL rejecting a regular
// expression pattern.
func IsInvalidRegex(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidRegex
}
