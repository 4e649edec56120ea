package pgrepo

import "errors"

// rowScanner покрывает и pgx.Row, и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

var errNoRowsAffected = errors.New("no rows affected")
