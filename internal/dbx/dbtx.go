// Package dbx carries the small database plumbing the Pathshala repositories
// build on: DBTX, a query interface satisfied by both *sql.DB and *sql.Tx,
// and WithTx for running repository calls inside one transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what the users and notes repositories accept instead of a concrete
// *sql.DB, so the same repository code runs against a plain connection or a
// transaction handle.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction on db, passes the transactional handle to fn,
// and commits if fn succeeds. Any error, or a panic (which is rethrown),
// rolls the transaction back.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := repomanager.Notes(tx).Create(ctx, note)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
