// Code generated by ent, DO NOT EDIT.

package rankingsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rankingsnapshot type in the database.
	Label = "ranking_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "snapshot_id"
	// FieldTargetDomain holds the string denoting the target_domain field in the database.
	FieldTargetDomain = "target_domain"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// FieldRankings holds the string denoting the rankings field in the database.
	FieldRankings = "rankings"
	// Table holds the table name of the rankingsnapshot in the database.
	Table = "ranking_snapshots"
)

// Columns holds all SQL columns for rankingsnapshot fields.
var Columns = []string{
	FieldID,
	FieldTargetDomain,
	FieldTakenAt,
	FieldRankings,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the RankingSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTargetDomain orders the results by the target_domain field.
func ByTargetDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDomain, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
