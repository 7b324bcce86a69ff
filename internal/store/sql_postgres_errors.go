package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means an INSERT or UPDATE hit a unique constraint.
	UniqueViolation

	// Transient means the failure is caused by the connection or by
	// contention and the same statement may succeed later.
	Transient
)

// String returns a label suitable for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the SQLSTATE code of a *pgconn.PgError returned by pgx.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Transient codes:
//   - Class 08 — connection exceptions
//   - Class 40 — serialization failure, deadlock
//   - Class 57 — cannot connect now
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Unclassified
}
