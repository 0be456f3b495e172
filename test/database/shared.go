package database

import (
	"testing"

	"github.com/brandlens/brandlens/pkg/database"
)

// SharedTestDB is one migrated schema served to several replica
// clients. Each replica gets its own connection pool, so shutting one
// replica down cannot starve another, while queue claims and
// NOTIFY/LISTEN traffic still cross between them through the shared
// schema.
type SharedTestDB struct {
	baseDSN   string
	schemaDSN string
}

// NewSharedTestDB provisions the schema and migrates it once. The
// schema drop registered inside runs after every replica pool has
// closed.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	base := BaseDSN(t)
	dsn := provisionSchema(t, base)

	// The migration pool is not handed to any replica; closing it
	// eagerly keeps the connection count down while replicas run.
	db, drv, entClient := openPool(t, dsn)
	migrateSchema(t, entClient, drv)
	_ = entClient.Close()
	_ = db.Close()

	return &SharedTestDB{baseDSN: base, schemaDSN: dsn}
}

// NewClient opens an independent pool onto the shared schema and wraps
// it in the production client type. Closed via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, _, entClient := openPool(t, s.schemaDSN)
	return database.NewClientFromEnt(entClient, db)
}

// BaseDSN returns the server connection string without search_path,
// for dedicated LISTEN connections.
func (s *SharedTestDB) BaseDSN() string {
	return s.baseDSN
}
