package errors

// Backend specific classification for errors raised while reading upstream
// tables from Postgres or ClickHouse

import (
	"context"
	stderrs "errors"
	"net"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes a read-only fetch can run into
const (
	pgErrInsufficientPrivilege = "42501"
	pgErrUndefinedTable        = "42P01"
	pgErrSerializationFailure  = "40001"
	pgErrDeadlockDetected      = "40P01"
	pgErrLockNotAvailable      = "55P03"
	pgErrQueryCanceled         = "57014"
	pgErrAdminShutdown         = "57P01"
	pgErrCannotConnectNow      = "57P03"
	pgErrTooManyConnections    = "53300"
)

// ClickHouse server exception codes worth retrying
var chRetryable = map[int32]bool{
	159: true, // TIMEOUT_EXCEEDED
	202: true, // TOO_MANY_SIMULTANEOUS_QUERIES
	209: true, // SOCKET_TIMEOUT
	210: true, // NETWORK_ERROR
	394: true, // QUERY_WAS_CANCELLED
}

// ClickHouse codes that mean the query itself is wrong
var chNotFound = map[int32]bool{
	60: true, // UNKNOWN_TABLE
	81: true, // UNKNOWN_DATABASE
}

const (
	chAccessDenied = 497
	chAuthFailed   = 516
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// ExtractCHException returns (*clickhouse.Exception, true) if err carries a server exception
func ExtractCHException(err error) (*clickhouse.Exception, bool) {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// UpstreamCode maps a driver error to an ErrorCode
func UpstreamCode(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorCodeUnknown
	case stderrs.Is(err, context.DeadlineExceeded):
		return ErrorCodeTimeout
	}
	if e, ok := As(err); ok {
		return e.code
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrInsufficientPrivilege:
			return ErrorCodeForbidden
		case pgErrUndefinedTable:
			return ErrorCodeNotFound
		case pgErrQueryCanceled:
			return ErrorCodeTimeout
		case pgErrAdminShutdown, pgErrCannotConnectNow, pgErrTooManyConnections:
			return ErrorCodeUnavailable
		}
		return ErrorCodeDB
	}
	if ex, ok := ExtractCHException(err); ok {
		switch {
		case ex.Code == chAccessDenied || ex.Code == chAuthFailed:
			return ErrorCodeForbidden
		case chNotFound[ex.Code]:
			return ErrorCodeNotFound
		case chRetryable[ex.Code]:
			return ErrorCodeUnavailable
		}
		return ErrorCodeDB
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		if ne.Timeout() {
			return ErrorCodeTimeout
		}
		return ErrorCodeUnavailable
	}
	return ErrorCodeUnknown
}

// FromUpstream wraps a driver error with its mapped code and msg; nil stays nil
func FromUpstream(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, UpstreamCode(err), msg)
}

// IsRetryable reports whether a fetch error is transient. Local cancellation is
// never retried, the caller decides what happens next
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) {
		return false
	}

	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable,
			pgErrAdminShutdown, pgErrCannotConnectNow, pgErrTooManyConnections:
			return true
		}
		return strings.HasPrefix(pgErr.Code, "08") // connection exception class
	}
	if ex, ok := ExtractCHException(err); ok {
		return chRetryable[ex.Code]
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		return true
	}

	s := strings.ToLower(Root(err).Error())
	switch {
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "connection reset"),
		strings.Contains(s, "broken pipe"),
		strings.Contains(s, "unexpected eof"),
		strings.Contains(s, "terminating connection due to administrator command"):
		return true
	}
	return false
}

// Retryable reports whether err is worth retrying against the upstream store
func Retryable(err error) bool { return IsRetryable(err) }
