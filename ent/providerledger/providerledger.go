// Code generated by ent, DO NOT EDIT.

package providerledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the providerledger type in the database.
	Label = "provider_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldDailyCost holds the string denoting the daily_cost field in the database.
	FieldDailyCost = "daily_cost"
	// FieldMonthlyCost holds the string denoting the monthly_cost field in the database.
	FieldMonthlyCost = "monthly_cost"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// FieldRequestsToday holds the string denoting the requests_today field in the database.
	FieldRequestsToday = "requests_today"
	// FieldLastReset holds the string denoting the last_reset field in the database.
	FieldLastReset = "last_reset"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the providerledger in the database.
	Table = "provider_ledgers"
)

// Columns holds all SQL columns for providerledger fields.
var Columns = []string{
	FieldID,
	FieldProvider,
	FieldDailyCost,
	FieldMonthlyCost,
	FieldTotalCost,
	FieldRequestsToday,
	FieldLastReset,
	FieldUpdatedAt,
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
	// DefaultDailyCost holds the default value on creation for the "daily_cost" field.
	DefaultDailyCost float64
	// DefaultMonthlyCost holds the default value on creation for the "monthly_cost" field.
	DefaultMonthlyCost float64
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
	// DefaultRequestsToday holds the default value on creation for the "requests_today" field.
	DefaultRequestsToday int
	// DefaultLastReset holds the default value on creation for the "last_reset" field.
	DefaultLastReset func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProviderLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByDailyCost orders the results by the daily_cost field.
func ByDailyCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyCost, opts...).ToFunc()
}

// ByMonthlyCost orders the results by the monthly_cost field.
func ByMonthlyCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyCost, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByRequestsToday orders the results by the requests_today field.
func ByRequestsToday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestsToday, opts...).ToFunc()
}

// ByLastReset orders the results by the last_reset field.
func ByLastReset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReset, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
