// Package repository contains all SQL executed by the API.  Every statement
// is parameterized; user input never reaches a query string directly.
// Sentinel errors defined here let handlers map store outcomes onto HTTP
// status codes without inspecting driver internals.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrClubNotFound is returned when a lookup, update or soft delete matches
// zero rows.  Handlers translate it into HTTP 404.
var ErrClubNotFound = errors.New("club not found")

// ErrSlugTaken is returned when an insert or update trips the unique
// constraint on clubs.slug.  Handlers translate it into HTTP 409.
var ErrSlugTaken = errors.New("club with this slug already exists")

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
