package book_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookSession "github.com/younesAM01/StayFit-BookingService/internal/usecase/book_session"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

type fakeUseCase struct {
	req  *bookSession.Request
	resp *bookSession.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookSession.Request) (*bookSession.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &bookSession.Response{
			ID:       100,
			CoachID:  1,
			ClientID: 10,
			Hour:     types.HourOfDay(17),
			Status:   "scheduled",
		},
	}

	rec := doRequest(t, uc, `{
		"coachId": 1,
		"clientId": 10,
		"clientPackId": 5,
		"sessionDate": "2026-09-12",
		"hour": "5PM"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Час нормализован на границе: use case получил канонические 17
	require.NotNil(t, uc.req)
	assert.Equal(t, types.HourOfDay(17), uc.req.Hour)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "17:00", resp.Hour)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_InvalidHourFormat(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{
		"coachId": 1,
		"clientId": 10,
		"clientPackId": 5,
		"sessionDate": "2026-09-12",
		"hour": "17:30"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{
		"coachId": 1,
		"clientId": 10,
		"clientPackId": 5,
		"sessionDate": "12.09.2026",
		"hour": "17:00"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	body := `{
		"coachId": 1,
		"clientId": 10,
		"clientPackId": 5,
		"sessionDate": "2026-09-12",
		"hour": "17:00"
	}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot taken", err: bookSession.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "coach not found", err: bookSession.ErrCoachNotFound, wantStatus: http.StatusNotFound},
		{name: "coach inactive", err: bookSession.ErrCoachInactive, wantStatus: http.StatusBadRequest},
		{name: "client not found", err: bookSession.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{name: "pack not found", err: bookSession.ErrPackNotFound, wantStatus: http.StatusNotFound},
		{name: "pack not owned", err: bookSession.ErrPackNotOwned, wantStatus: http.StatusForbidden},
		{name: "pack expired", err: bookSession.ErrPackExpired, wantStatus: http.StatusUnprocessableEntity},
		{name: "pack exhausted", err: bookSession.ErrPackExhausted, wantStatus: http.StatusUnprocessableEntity},
		{name: "too late", err: bookSession.ErrTooLateToBook, wantStatus: http.StatusBadRequest},
		{name: "internal", err: bookSession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
