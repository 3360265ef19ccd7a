package backend

import "fmt"

// Dialect exposes the few SQL fragments that differ between the embedded and
// networked engines. Stores build their raw statements from these primitives
// instead of branching on backend identity at every call site.
type Dialect interface {
	Name() string
	// ContainsFold returns an expression matching col against a lowercased
	// %needle% bind parameter, case-insensitively.
	ContainsFold(col string) string
	// DayBucket returns an expression truncating a timestamp column to its
	// calendar date as a YYYY-MM-DD string.
	DayBucket(col string) string
	// LatencyHours returns an expression for the difference between two
	// timestamp columns, in fractional hours.
	LatencyHours(laterCol, earlierCol string) string
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) ContainsFold(col string) string {
	return fmt.Sprintf("lower(%s) LIKE ?", col)
}

func (sqliteDialect) DayBucket(col string) string {
	return fmt.Sprintf("date(%s)", col)
}

func (sqliteDialect) LatencyHours(laterCol, earlierCol string) string {
	return fmt.Sprintf("(julianday(%s) - julianday(%s)) * 24.0", laterCol, earlierCol)
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) ContainsFold(col string) string {
	return fmt.Sprintf("LOWER(%s) LIKE ?", col)
}

func (mysqlDialect) DayBucket(col string) string {
	return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", col)
}

func (mysqlDialect) LatencyHours(laterCol, earlierCol string) string {
	return fmt.Sprintf("TIMESTAMPDIFF(SECOND, %s, %s) / 3600.0", earlierCol, laterCol)
}
