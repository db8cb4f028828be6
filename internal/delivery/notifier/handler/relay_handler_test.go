package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "gtfstrigger/internal/domain/errors"
	mockUsecase "gtfstrigger/internal/mocks/usecase"
	"gtfstrigger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRelayHandler(t *testing.T) (*RelayHandler, *mockUsecase.MockRelayUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockRelayUsecase(t)

	return NewRelayHandler(RelayHandlerParams{
		RelayUC: uc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), uc
}

func postNotify(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRelayHandler_Notify(t *testing.T) {
	t.Parallel()

	h, uc := newRelayHandler(t)
	uc.EXPECT().Relay(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *usecase.RelayRequest) (*usecase.RelayResult, error) {
			assert.Equal(t, "bus-1", req.Event.VehicleID)
			assert.Equal(t, usecase.Recipients{"taro@example.com"}, req.Email)
			assert.Equal(t, usecase.Recipients{"tok-1", "tok-2"}, req.FCM)

			return &usecase.RelayResult{
				Channels: []string{usecase.ChannelEmail, usecase.ChannelMattermost},
				Subject:  "Commute",
			}, nil
		}).Once()

	c, rec := postNotify(`{"vehicle_id":"bus-1","email":"taro@example.com","fcm":["tok-1","tok-2"]}`)
	require.NoError(t, h.Notify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subject":"Commute"`)
	assert.Contains(t, rec.Body.String(), `"channels":["email","mattermost"]`)
}

func TestRelayHandler_Notify_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		relayErr error
		wantCode int
		wantBody string
	}{
		{name: "malformed json", body: `{"vehicle_id":`, wantCode: http.StatusBadRequest, wantBody: "Invalid JSON format"},
		{name: "recipients of wrong type", body: `{"email":42}`, wantCode: http.StatusBadRequest, wantBody: "VALIDATION_FAILED"},
		{
			name:     "no channel configured",
			body:     `{"vehicle_id":"bus-1","fcm":"tok-1"}`,
			relayErr: domainerrors.ErrNotificationFailed,
			wantCode: http.StatusBadGateway,
			wantBody: domainerrors.ErrNotificationFailed.ErrorCode(),
		},
		{
			name:     "bad address",
			body:     `{"vehicle_id":"bus-1","email":"nobody"}`,
			relayErr: domainerrors.ErrValidationFailed,
			wantCode: http.StatusBadRequest,
			wantBody: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, uc := newRelayHandler(t)
			if tt.relayErr != nil {
				uc.EXPECT().Relay(mock.Anything, mock.Anything).Return(nil, tt.relayErr).Once()
			}

			c, rec := postNotify(tt.body)
			require.NoError(t, h.Notify(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
