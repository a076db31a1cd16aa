package exporters

import (
	"fmt"

	"usage-statistics/internal/shared/svcerrors"
)

const (
	codeInternalExportSerializationFailed = "EXP_9000"
	codeInternalExportWriteFailed         = "EXP_9001"
)

// errExportSerializationFailed returns an error when the export document cannot be marshaled.
func errExportSerializationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportSerializationFailed, fmt.Errorf("exportSerializationFailed: %w", cause))
}

// errExportWriteFailed returns an error when the export document cannot be placed in the drop location.
func errExportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportWriteFailed, fmt.Errorf("exportWriteFailed: %w", cause))
}
