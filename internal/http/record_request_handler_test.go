package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"usage-statistics/internal/models"
	recordermocks "usage-statistics/internal/recorders/mocks"
	"usage-statistics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordRequestHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordingService := recordermocks.NewMockRecordingService(ctrl)
	handler := NewRecordRequestHandler(mockRecordingService)

	body := []byte(`{"type": "RECORD_VIEW", "recordId": "PI_01"}`)
	req := httptest.NewRequest(http.MethodPost, "/statistics/requests", bytes.NewReader(body))
	req.Header.Set(headerSessionID, "ABCD")
	req.Header.Set(headerUserAgent, "Mozilla/5.0 Firefox/115.0")
	req.RemoteAddr = "203.0.113.7:51234"
	rr := httptest.NewRecorder()

	mockRecordingService.EXPECT().
		RecordRequest(
			gomock.Any(),
			models.RequestRecordView,
			"PI_01",
			"ABCD",
			"Mozilla/5.0 Firefox/115.0",
			"203.0.113.7",
		)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestRecordRequestHandler_Handle_ForwardedForWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordingService := recordermocks.NewMockRecordingService(ctrl)
	handler := NewRecordRequestHandler(mockRecordingService)

	body := []byte(`{"type": "FILE_DOWNLOAD", "recordId": "PI_01"}`)
	req := httptest.NewRequest(http.MethodPost, "/statistics/requests", bytes.NewReader(body))
	req.Header.Set(headerSessionID, "ABCD")
	req.Header.Set(headerForwardedFor, "198.51.100.2, 10.0.0.1")
	req.RemoteAddr = "10.0.0.1:51234"
	rr := httptest.NewRecorder()

	mockRecordingService.EXPECT().
		RecordRequest(gomock.Any(), models.RequestFileDownload, "PI_01", "ABCD", gomock.Any(), "198.51.100.2")

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestRecordRequestHandler_Handle_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		sessionID string
	}{
		{
			name:      "invalid json",
			body:      `{not json`,
			sessionID: "ABCD",
		},
		{
			name:      "unknown request type",
			body:      `{"type": "PAGE_VIEW", "recordId": "PI_01"}`,
			sessionID: "ABCD",
		},
		{
			name:      "missing record id",
			body:      `{"type": "RECORD_VIEW"}`,
			sessionID: "ABCD",
		},
		{
			name:      "missing session id",
			body:      `{"type": "RECORD_VIEW", "recordId": "PI_01"}`,
			sessionID: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No recording expected for invalid input.
			mockRecordingService := recordermocks.NewMockRecordingService(ctrl)
			handler := NewRecordRequestHandler(mockRecordingService)

			req := httptest.NewRequest(http.MethodPost, "/statistics/requests", bytes.NewReader([]byte(tt.body)))
			if tt.sessionID != "" {
				req.Header.Set(headerSessionID, tt.sessionID)
			}
			rr := httptest.NewRecorder()

			err := handler.Handle(rr, req)

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
			// Status should not be set when error occurs
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}
