package recorders

import (
	"fmt"

	"usage-statistics/internal/shared/svcerrors"
)

// RecordingService errors. These are never returned to the request path;
// they exist so logs and metrics carry stable codes.
const (
	codeValidationFailed = "REC_1000"

	codeInternalDailyStoreLoadFailed   = "REC_9000"
	codeInternalDailyStoreUpsertFailed = "REC_9001"
)

// errInternalDailyStoreLoadFailed returns an error when loading the current day's persisted state fails.
func errInternalDailyStoreLoadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDailyStoreLoadFailed, fmt.Errorf("dailyStoreLoadFailed: %w", cause))
}

// errInternalDailyStoreUpsertFailed returns an error when persisting the current day fails.
func errInternalDailyStoreUpsertFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDailyStoreUpsertFailed, fmt.Errorf("dailyStoreUpsertFailed: %w", cause))
}
