package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nirogya-be/internal/dto"
	"nirogya-be/pkg/assistant/responder"
	"nirogya-be/pkg/conversation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatbotService struct {
	generateRes      *dto.GenerateResponse
	generateErr      error
	lastUsername     string
	lastReq          *dto.GenerateRequest
	history          []dto.ChatLogResponse
	historyErr       error
	lastHistoryQuery *dto.HistoryQuery
	clearedFor       []string
	set              conversation.Set
	putSet           conversation.Set
	putEmail         string
}

func (f *fakeChatbotService) Generate(ctx context.Context, username string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	f.lastUsername = username
	f.lastReq = req
	return f.generateRes, f.generateErr
}

func (f *fakeChatbotService) History(ctx context.Context, username string, q *dto.HistoryQuery) ([]dto.ChatLogResponse, error) {
	f.lastUsername = username
	f.lastHistoryQuery = q
	return f.history, f.historyErr
}

func (f *fakeChatbotService) ClearHistory(ctx context.Context, username string) error {
	f.clearedFor = append(f.clearedFor, username)
	return nil
}

func (f *fakeChatbotService) HistoryByConversation(ctx context.Context, username, conversationID string) ([]dto.ChatLogResponse, error) {
	return f.history, f.historyErr
}

func (f *fakeChatbotService) GetConversations(ctx context.Context, email string) (conversation.Set, error) {
	return f.set, nil
}

func (f *fakeChatbotService) PutConversations(ctx context.Context, email string, set conversation.Set) error {
	f.putEmail = email
	f.putSet = set
	return nil
}

func newChatApp(svc *fakeChatbotService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewChatbotController(svc, testAuthConfig()).RegisterRoutes(api)
	return app
}

func authedRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, uuid.New(), "asha@example.com", "asha"))
	return req
}

func TestGenerateRequiresAuth(t *testing.T) {
	app := newChatApp(&fakeChatbotService{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat/generate", strings.NewReader(`{"query":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGenerateReturnsReply(t *testing.T) {
	svc := &fakeChatbotService{
		generateRes: &dto.GenerateResponse{Reply: "Ayurvedic Name\n- Sandhivata (Arthritis)"},
	}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodPost, "/api/chat/generate", `{"query":"My father has arthritis"}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["reply"], "Sandhivata")
	assert.Equal(t, "asha", svc.lastUsername)
	assert.Equal(t, "My father has arthritis", svc.lastReq.Query)
}

func TestGenerateMissingQuery(t *testing.T) {
	svc := &fakeChatbotService{generateErr: responder.ErrMissingQuery}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodPost, "/api/chat/generate", `{"query":""}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Query is required", body["message"])
}

func TestGenerateUpstreamFailureReturnsFallbackReply(t *testing.T) {
	svc := &fakeChatbotService{
		generateRes: &dto.GenerateResponse{Reply: "I apologize, but I'm experiencing some technical difficulties right now."},
		generateErr: fmt.Errorf("%w: 503", responder.ErrUpstream),
	}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodPost, "/api/chat/generate", `{"query":"my skin rash is spreading"}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	// The fallback text is user-facing; raw upstream detail never leaks.
	assert.Contains(t, body["reply"], "technical difficulties")
	assert.NotContains(t, fmt.Sprint(body), "503")
}

func TestHistoryEnvelope(t *testing.T) {
	svc := &fakeChatbotService{
		history: []dto.ChatLogResponse{
			{Id: uuid.New(), Username: "asha", UserMessage: "my head hurts", BotReply: "..."},
		},
	}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodGet, "/api/chat/history", ""), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
}

func TestHistoryPassesSessionFilterAndPagination(t *testing.T) {
	svc := &fakeChatbotService{}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodGet, "/api/chat/history?sessionId=s1&limit=20&offset=40", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, svc.lastHistoryQuery)
	assert.Equal(t, "s1", svc.lastHistoryQuery.SessionId)
	assert.Equal(t, 20, svc.lastHistoryQuery.Limit)
	assert.Equal(t, 40, svc.lastHistoryQuery.Offset)
}

func TestClearHistoryDeletesForAuthenticatedUser(t *testing.T) {
	svc := &fakeChatbotService{}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodDelete, "/api/chat/history", ""), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"asha"}, svc.clearedFor)
}

func TestConversationsRoundTrip(t *testing.T) {
	svc := &fakeChatbotService{
		set: conversation.Set{
			{{From: conversation.FromUser, Text: "hi"}, {From: conversation.FromBot, Text: "Namaste!"}},
		},
	}
	app := newChatApp(svc)

	resp, err := app.Test(authedRequest(t, fiber.MethodGet, "/api/chat/conversations", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	putBody := `{"conversations":[[{"from":"user","text":"my acidity is back"},{"from":"bot","text":"Amlapitta guidance"}]]}`
	resp, err = app.Test(authedRequest(t, fiber.MethodPut, "/api/chat/conversations", putBody), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, svc.putSet, 1)
	assert.Equal(t, "asha@example.com", svc.putEmail)
	assert.Equal(t, "my acidity is back", svc.putSet[0][0].Text)
}
