package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldSessionID   = "session_id"
	FieldRecordID    = "record_id"
	FieldRequestType = "request_type"
	FieldStatsDate   = "stats_date"
	FieldViewerName  = "viewer_name"
)
