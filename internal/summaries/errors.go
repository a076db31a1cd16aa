package summaries

import (
	"fmt"

	"usage-statistics/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "SUM_1000"

	codeInternalDailyStoreFailed = "SUM_9000"
	codeSearchEngineFailed       = "SUM_9001"
)

// errValidationFailed returns an error for malformed summary filters.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalDailyStoreFailed returns an error when reading the live store fails.
func errInternalDailyStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDailyStoreFailed, fmt.Errorf("dailyStoreFailed: %w", cause))
}

// errSearchEngineFailed returns an error when the search/index collaborator
// cannot be queried. This is recoverable for the reporting caller.
func errSearchEngineFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeSearchEngineFailed, "search engine unavailable", fmt.Errorf("searchEngineFailed: %w", cause))
}
