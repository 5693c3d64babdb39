package repository

import (
	"database/sql"

	"github.com/go-jet/jet/v2/qrm"
)

type dbConn interface {
	qrm.Queryable
	qrm.Executable
}

func dbOrTx(db *sql.DB, tx *sql.Tx) dbConn {
	if tx != nil {
		return tx
	}
	return db
}
