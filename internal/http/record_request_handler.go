package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"usage-statistics/internal/models"
	"usage-statistics/internal/recorders"
)

const maxRecordRequestBytes = 4 * 1024

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// recordRequestBody is the payload of POST /statistics/requests. Session
// identity travels in the x-session-id header, the user agent and client
// address come from the transport.
type recordRequestBody struct {
	Type     string `json:"type"`
	RecordID string `json:"recordId"`
}

type recordRequestHandler struct {
	recordingService recorders.RecordingService
}

func NewRecordRequestHandler(recordingService recorders.RecordingService) AppHttpHandler {
	return &recordRequestHandler{
		recordingService: recordingService,
	}
}

// Handle processes POST /statistics/requests. Validation problems are the
// caller's fault and yield 400; once the input is valid the response is
// always 202, because recording itself is fire-and-forget.
func (h *recordRequestHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if r.Body == nil {
		return errRecordRequestValidationFailed("empty request body", nil)
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxRecordRequestBytes))
	if err != nil {
		return errRecordRequestValidationFailed("failed to read request body", err)
	}

	var body recordRequestBody
	if err := json.Unmarshal(data, &body); err != nil {
		return errRecordRequestValidationFailed("invalid json", err)
	}

	requestType, err := models.NewRequestTypeFromString(strings.TrimSpace(body.Type))
	if err != nil {
		return errRecordRequestValidationFailed(err.Error(), err)
	}
	if strings.TrimSpace(body.RecordID) == "" {
		return errRecordRequestValidationFailed("recordId is required", nil)
	}
	session := sessionID(r)
	if session == "" {
		return errRecordRequestValidationFailed("x-session-id header is required", nil)
	}

	h.recordingService.RecordRequest(r.Context(), requestType, body.RecordID, session, userAgent(r), clientAddress(r))

	w.WriteHeader(http.StatusAccepted)
	return nil
}
