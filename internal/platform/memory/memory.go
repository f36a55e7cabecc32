// Package memory provides in-memory implementations of the store interfaces
// for tests and local development. The fakes honor the store contracts
// (sentinel errors, ID allocation, aggregate loading) without any real
// persistence.
package memory

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// driverName is the database/sql driver name under which the no-op driver
// is registered.
const driverName = "memorystore"

var registerOnce sync.Once

// newNopDB returns a *sql.DB backed by a no-op driver. The in-memory stores
// expose it through DB() so store.RunInTransaction can begin and commit
// transactions against the fakes; the transactions carry no isolation.
func newNopDB() *sql.DB {
	registerOnce.Do(func() {
		sql.Register(driverName, nopDriver{})
	})

	db, err := sql.Open(driverName, "")
	if err != nil {
		// sql.Open with a registered driver only fails on a bad DSN.
		panic(err)
	}
	return db
}

type nopDriver struct{}

func (nopDriver) Open(string) (driver.Conn, error) {
	return &nopConn{}, nil
}

type nopConn struct{}

func (*nopConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("memory driver does not execute statements")
}

func (*nopConn) Close() error {
	return nil
}

func (*nopConn) Begin() (driver.Tx, error) {
	return nopTx{}, nil
}

type nopTx struct{}

func (nopTx) Commit() error {
	return nil
}

func (nopTx) Rollback() error {
	return nil
}
