package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx.
// Committing and rolling back stay with the caller that opened tx.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	txDB := db.Session(&gorm.Session{
		NewDB:                  true,
		SkipDefaultTransaction: true,
		Context:                context.Background(),
	})
	txDB.Statement.ConnPool = tx
	return txDB
}
