package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gtfstrigger/internal/delivery/api/response"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RelayHandlerParams holds dependencies for RelayHandler, injected by Fx.
type RelayHandlerParams struct {
	fx.In

	RelayUC usecase.RelayUsecase
	Logger  *slog.Logger
}

// RelayHandler receives the matcher's webhook calls
type RelayHandler struct {
	relayUC usecase.RelayUsecase
	logger  *slog.Logger
}

// NewRelayHandler is the constructor for RelayHandler
func NewRelayHandler(params RelayHandlerParams) *RelayHandler {
	return &RelayHandler{
		relayUC: params.RelayUC,
		logger:  params.Logger,
	}
}

// RelayData is the payload of a successful relay
type RelayData struct {
	Message  string   `json:"message"`
	Subject  string   `json:"subject"`
	Channels []string `json:"channels"`
}

// Notify handles POST /notify
func (h *RelayHandler) Notify(c echo.Context) error {
	var req usecase.RelayRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			"Invalid JSON format",
			err.Error(),
		)
	}

	result, err := h.relayUC.Relay(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RelayData{
		Message:  "Notification relayed",
		Subject:  result.Subject,
		Channels: result.Channels,
	})
}
