package backend

import (
	"log"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"contactdesk/models"
)

type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindMySQL  Kind = "mysql"
)

// Backend is the storage engine chosen once at startup. Immutable afterwards;
// every store receives it by injection.
type Backend struct {
	DB      *gorm.DB
	Kind    Kind
	Dialect Dialect

	// FallbackErr records why the networked backend was abandoned, empty if
	// it was never attempted or came up fine.
	FallbackErr string
}

// Select picks the backend. A non-empty databaseURL means the networked
// engine is attempted first; any failure there (open or migrate) is recorded
// and the process permanently downgrades to the embedded sqlite file. The
// downgrade is one-directional and never retried. A sqlite failure is fatal
// to startup and returned to the caller.
func Select(databaseURL, sqlitePath string) (*Backend, error) {
	if databaseURL != "" {
		db, err := openMySQL(databaseURL)
		if err == nil {
			return &Backend{DB: db, Kind: KindMySQL, Dialect: mysqlDialect{}}, nil
		}
		log.Printf("[backend] mysql init failed, falling back to sqlite: %v", err)
		db2, err2 := openSQLite(sqlitePath)
		if err2 != nil {
			return nil, err2
		}
		return &Backend{DB: db2, Kind: KindSQLite, Dialect: sqliteDialect{}, FallbackErr: err.Error()}, nil
	}

	db, err := openSQLite(sqlitePath)
	if err != nil {
		return nil, err
	}
	return &Backend{DB: db, Kind: KindSQLite, Dialect: sqliteDialect{}}, nil
}

func openMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(normalizeDSN(dsn)), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(path string) (*gorm.DB, error) {
	// _fk turns on foreign key enforcement for every pooled connection; the
	// reply cascade depends on it.
	if !strings.Contains(path, "?") {
		path += "?_fk=1"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// migrate is idempotent; AutoMigrate creates the tables, the reply->message
// cascade constraint and the secondary indexes only when absent.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Message{}, &models.Reply{})
}

// normalizeDSN makes sure timestamps come back as time.Time.
func normalizeDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}
