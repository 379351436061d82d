package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/concierge-bot/internal/dialog"
	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/mocks"
	"github.com/seu-repo/concierge-bot/internal/service/chat"
	"github.com/seu-repo/concierge-bot/internal/service/fulfillment"
)

type chatFunc func(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error)

func (f chatFunc) Relay(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error) {
	return f(ctx, userID, env)
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop())})
}

func postJSON(t *testing.T, app *fiber.App, path, body string, headers map[string]string) (int, testResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, testResponse{raw: data, header: resp.Header.Get}
}

type testResponse struct {
	raw    []byte
	header func(string) string
}

func fulfillmentApp(t *testing.T) *fiber.App {
	app := newApp(t)
	svc := fulfillment.NewService(dialog.DefaultRouter(dialog.Options{}), mocks.NewMockMessageQueue(),
		fulfillment.Config{Subject: "dining.suggestions"}, zap.NewNop())
	app.Post("/fulfillment", NewFulfillmentHandler(svc, zap.NewNop()).Handle)
	return app
}

func TestFulfillment_Greeting(t *testing.T) {
	app := fulfillmentApp(t)

	status, body := postJSON(t, app, "/fulfillment",
		`{"invocationSource":"FulfillmentCodeHook","currentIntent":{"name":"MakeGreeting","slots":{}}}`, nil)
	require.Equal(t, fiber.StatusOK, status)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(body.raw, &resp))
	assert.Equal(t, domain.DialogActionClose, resp.DialogAction.Type)
	assert.Equal(t, domain.FulfillmentStateFulfilled, resp.DialogAction.FulfillmentState)
	assert.Equal(t, dialog.GreetingMessage, resp.DialogAction.Message.Content)
}

func TestFulfillment_ElicitKeepsNullSlot(t *testing.T) {
	app := fulfillmentApp(t)

	status, body := postJSON(t, app, "/fulfillment", `{
		"invocationSource":"DialogCodeHook",
		"currentIntent":{"name":"MakeDiningSuggestions","slots":{
			"Cuisine":"french","Location":"Manhattan","DiningTime":null,"NumPeople":null,"PhoneNumber":null}}}`, nil)
	require.Equal(t, fiber.StatusOK, status)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body.raw, &raw))
	assert.JSONEq(t, `"ElicitSlot"`, string(raw["dialogAction"]["type"]))
	assert.JSONEq(t, `"Cuisine"`, string(raw["dialogAction"]["slotToElicit"]))

	var slots map[string]*string
	require.NoError(t, json.Unmarshal(raw["dialogAction"]["slots"], &slots))
	require.Contains(t, slots, "Cuisine")
	assert.Nil(t, slots["Cuisine"])
	assert.Equal(t, "Manhattan", *slots["Location"])
}

func TestFulfillment_UnsupportedIntent(t *testing.T) {
	app := fulfillmentApp(t)

	status, body := postJSON(t, app, "/fulfillment",
		`{"invocationSource":"DialogCodeHook","currentIntent":{"name":"BookHotel"}}`, nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, string(body.raw), "BookHotel")
}

func TestFulfillment_BadJSON(t *testing.T) {
	app := fulfillmentApp(t)

	status, _ := postJSON(t, app, "/fulfillment", `{"currentIntent":`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestChat_RelaysReply(t *testing.T) {
	var gotUser string
	svc := chatFunc(func(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error) {
		gotUser = userID
		return domain.NewChatReply("echo: " + env.FirstText()), nil
	})
	app := newApp(t)
	app.Post("/chat", NewChatHandler(svc, zap.NewNop()).Post)

	status, body := postJSON(t, app, "/chat",
		`{"messages":[{"type":"unstructured","unstructured":{"text":"hello"}}]}`,
		map[string]string{HeaderUserID: "user-3"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "*", body.header(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "user-3", gotUser)

	var env domain.ChatEnvelope
	require.NoError(t, json.Unmarshal(body.raw, &env))
	assert.Equal(t, "echo: hello", env.FirstText())
}

func TestChat_GeneratesUserID(t *testing.T) {
	var gotUser string
	svc := chatFunc(func(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error) {
		gotUser = userID
		return domain.NewChatReply("ok"), nil
	})
	app := newApp(t)
	app.Post("/chat", NewChatHandler(svc, zap.NewNop()).Post)

	status, _ := postJSON(t, app, "/chat", `{"messages":[{"type":"unstructured","unstructured":{"text":"hi"}}]}`, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, gotUser, 36)
}

func TestChat_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty", chat.ErrEmptyMessage, fiber.StatusBadRequest},
		{"breaker open", fmt.Errorf("%w: open", chat.ErrDialogUnavailable), fiber.StatusServiceUnavailable},
		{"upstream", errors.New("chat: post text: timeout"), fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := chatFunc(func(ctx context.Context, userID string, env *domain.ChatEnvelope) (*domain.ChatEnvelope, error) {
				return nil, tt.err
			})
			app := newApp(t)
			app.Post("/chat", NewChatHandler(svc, zap.NewNop()).Post)

			status, body := postJSON(t, app, "/chat", `{"messages":[]}`, nil)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, "*", body.header(fiber.HeaderAccessControlAllowOrigin))
		})
	}
}
