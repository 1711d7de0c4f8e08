package securestore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pressly/goose/v3"

	"github.com/framez-app/framez/internal/common"
	"github.com/framez-app/framez/internal/cryptox"
	"github.com/framez-app/framez/internal/dbx"
	"github.com/framez-app/framez/internal/securestore/migrations"
)

// saltMetaKey is the store_meta row holding the KDF salt for this database.
const saltMetaKey = "kdf_salt"

const saltSize = 32

// SQLiteStore persists items in a local SQLite database, sealing every value
// with AES-GCM under a key derived from the device secret. The salt lives in
// store_meta, so the same secret reopens the same database; a different
// secret makes every read fail authentication.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

// NewSQLiteStore wraps an already-migrated database handle with the given
// AES key. Most callers should use Open instead.
func NewSQLiteStore(db *sql.DB, key []byte) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

// Open opens (creating if needed) the SQLite database at dsn, applies
// migrations, and derives the sealing key from secret and the persisted
// per-database salt.
func Open(ctx context.Context, dsn string, secret []byte) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageErr("open database", "", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, storageErr("migrate database", "", err)
	}

	salt, err := loadOrCreateSalt(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db, cryptox.DeriveKey(secret, salt)), nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func loadOrCreateSalt(ctx context.Context, db *sql.DB) ([]byte, error) {
	var salt []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = ?`, saltMetaKey).Scan(&salt)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("load salt", saltMetaKey, err)
	}

	salt = common.GenerateRandByteArray(saltSize)

	// ON CONFLICT keeps the first writer's salt if two processes race here.
	_, err = db.ExecContext(ctx, `
		INSERT INTO store_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO NOTHING
	`, saltMetaKey, salt)
	if err != nil {
		return nil, storageErr("save salt", saltMetaKey, err)
	}

	err = db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = ?`, saltMetaKey).Scan(&salt)
	if err != nil {
		return nil, storageErr("load salt", saltMetaKey, err)
	}
	return salt, nil
}

func (s *SQLiteStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM secure_items WHERE key = ?`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get", key, err)
	}

	value, err := cryptox.Open(sealed, s.key)
	if err != nil {
		return nil, storageErr("unseal", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) SetItem(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, s.key)
	if err != nil {
		return storageErr("seal", key, err)
	}
	return s.upsert(ctx, s.db, key, sealed)
}

// SetItems seals and writes every entry inside a single transaction, so a
// partial multi-key update is never observable.
func (s *SQLiteStore) SetItems(ctx context.Context, items map[string][]byte) error {
	sealed := make(map[string][]byte, len(items))
	for k, v := range items {
		sv, err := cryptox.Seal(v, s.key)
		if err != nil {
			return storageErr("seal", k, err)
		}
		sealed[k] = sv
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range sealed {
			if err := s.upsert(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) upsert(ctx context.Context, db dbx.DBTX, key string, sealed []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO secure_items (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return storageErr("set", key, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM secure_items WHERE key = ?`, key)
	if err != nil {
		return storageErr("delete", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
