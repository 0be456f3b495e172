package database

import (
	"testing"

	"github.com/brandlens/brandlens/pkg/database"
)

// NewTestClient provisions an isolated schema, migrates it, and wraps
// it in the production client type. Schema and connections are torn
// down when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	dsn := provisionSchema(t, BaseDSN(t))
	db, drv, entClient := openPool(t, dsn)
	migrateSchema(t, entClient, drv)

	return database.NewClientFromEnt(entClient, db)
}
