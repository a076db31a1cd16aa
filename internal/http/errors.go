package http

import (
	"usage-statistics/internal/shared/svcerrors"
)

const (
	codeRecordRequestValidationFailed = "API_1000"
	codeSummaryValidationFailed       = "API_1001"
)

// errRecordRequestValidationFailed returns an error for malformed record-request payloads.
func errRecordRequestValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRecordRequestValidationFailed, msg, cause)
}

// errSummaryValidationFailed returns an error for malformed summary query parameters.
func errSummaryValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeSummaryValidationFailed, msg, cause)
}
