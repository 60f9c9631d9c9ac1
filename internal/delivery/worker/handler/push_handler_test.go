package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"townhub/config"
	"townhub/internal/domain/constants"
	"townhub/internal/domain/service"
	mockUC "townhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockRelayUsecase) {
	relay := mockUC.NewMockRelayUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	handler := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: logger,
		Relay:  relay,
	})

	return handler, relay
}

func pushRequest(t *testing.T, event *service.NotificationEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = "m1"
	envelope.Subscription = "projects/p/subscriptions/s"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, relay := createTestPushHandler(t)

	event := &service.NotificationEvent{NotificationID: "n1", RecipientUID: "owner"}
	c, rec := pushRequest(t, event, map[string]string{"request_id": "req-42"})

	relay.EXPECT().
		ProcessNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.NotificationID == "n1" && e.RequestID == "req-42"
		})).
		Return(nil)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_ProcessingFailureStillAcks(t *testing.T) {
	handler, relay := createTestPushHandler(t)

	event := &service.NotificationEvent{NotificationID: "n1", RecipientUID: "owner"}
	c, rec := pushRequest(t, event, nil)

	relay.EXPECT().ProcessNotificationEvent(mock.Anything, mock.Anything).Return(assert.AnError)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code, "failures must not trigger Pub/Sub redelivery")
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadEnvelope(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
