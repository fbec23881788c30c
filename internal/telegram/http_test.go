package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestSendMessage_Success tests successful message sending
func TestSendMessage_Success(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request method and content type
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			t.Errorf("path = %q, want .../sendMessage", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true}) // nolint:errcheck
	}))
	defer server.Close()

	// Override the API base URL for testing
	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage("12345", "Привет"); err != nil {
		t.Errorf("SendMessage() unexpected error: %v", err)
	}

	if captured["chat_id"] != "12345" {
		t.Errorf("chat_id = %v, want 12345", captured["chat_id"])
	}
	if captured["text"] != "Привет" {
		t.Errorf("text = %v, want Привет", captured["text"])
	}
	if captured["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v, want HTML", captured["parse_mode"])
	}
	if _, hasKeyboard := captured["reply_markup"]; hasKeyboard {
		t.Error("plain SendMessage should not attach reply_markup")
	}
}

// TestSendMessage_APIError tests API error handling
func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Return error response
		response := map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	err := client.SendMessage("12345", "Привет")
	if err == nil {
		t.Error("SendMessage() expected error for API failure, got nil")
	}
	if err != nil && !strings.Contains(err.Error(), "Bad Request") {
		t.Errorf("SendMessage() error = %v, want error containing 'Bad Request'", err)
	}
}

// TestSendMessage_HTTPError tests HTTP error handling
func TestSendMessage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error")) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	err := client.SendMessage("12345", "Привет")
	if err == nil {
		t.Error("SendMessage() expected error for HTTP error, got nil")
	}
	if err != nil && !strings.Contains(err.Error(), "status 500") {
		t.Errorf("SendMessage() error = %v, want error containing 'status 500'", err)
	}
}

// TestSendMessageWithKeyboard_WebApp tests that the Web App keyboard reaches
// the wire intact
func TestSendMessageWithKeyboard_WebApp(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true}) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	keyboard := StartKeyboard("https://stats.example.com")
	if err := client.SendMessageWithKeyboard("12345", WelcomeMessage, keyboard); err != nil {
		t.Fatalf("SendMessageWithKeyboard() error: %v", err)
	}

	markup := captured["reply_markup"].(map[string]interface{})
	rows := markup["inline_keyboard"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("keyboard has %d rows, want 2", len(rows))
	}

	webAppButton := rows[0].([]interface{})[0].(map[string]interface{})
	if webAppButton["text"] != OpenAppButton {
		t.Errorf("button text = %v, want %q", webAppButton["text"], OpenAppButton)
	}
	webApp := webAppButton["web_app"].(map[string]interface{})
	if webApp["url"] != "https://stats.example.com" {
		t.Errorf("web_app.url = %v, want the mini-app URL", webApp["url"])
	}
	if _, has := webAppButton["callback_data"]; has {
		t.Error("web app button should not carry callback_data")
	}

	leadersButton := rows[1].([]interface{})[0].(map[string]interface{})
	if leadersButton["callback_data"] != LeadersCallback {
		t.Errorf("callback_data = %v, want %q", leadersButton["callback_data"], LeadersCallback)
	}
}

// TestAnswerCallbackQuery tests answering a button press
func TestAnswerCallbackQuery(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/answerCallbackQuery") {
			t.Errorf("path = %q, want .../answerCallbackQuery", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true}) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	if err := client.AnswerCallbackQuery("cb1", "Секунду...", false); err != nil {
		t.Fatalf("AnswerCallbackQuery() error: %v", err)
	}

	if captured["callback_query_id"] != "cb1" {
		t.Errorf("callback_query_id = %v, want cb1", captured["callback_query_id"])
	}
	if captured["text"] != "Секунду..." {
		t.Errorf("text = %v, want the answer text", captured["text"])
	}
}

// TestGetUpdatesWithTimeout tests long polling parameters and decoding
func TestGetUpdatesWithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/getUpdates") {
			t.Errorf("path = %q, want .../getUpdates", r.URL.Path)
		}
		if got := r.URL.Query().Get("offset"); got != "7" {
			t.Errorf("offset = %q, want 7", got)
		}
		if got := r.URL.Query().Get("timeout"); got != "30" {
			t.Errorf("timeout = %q, want 30", got)
		}

		w.Header().Set("Content-Type", "application/json")
		// nolint:errcheck
		w.Write([]byte(`{
			"ok": true,
			"result": [
				{"update_id": 8, "message": {"message_id": 1, "from": {"id": 42, "first_name": "Никита"}, "chat": {"id": 42, "type": "private"}, "text": "/start"}},
				{"update_id": 9, "callback_query": {"id": "cb1", "from": {"id": 42, "first_name": "Никита"}, "data": "leaders"}}
			]
		}`))
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	updates, err := client.GetUpdatesWithTimeout(7, 30)
	if err != nil {
		t.Fatalf("GetUpdatesWithTimeout() error: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	if updates[0].Message == nil || updates[0].Message.Text != "/start" {
		t.Errorf("updates[0] = %+v, want a /start message", updates[0])
	}
	if updates[0].Message.Chat.ID != 42 {
		t.Errorf("chat ID = %d, want 42", updates[0].Message.Chat.ID)
	}
	if updates[1].CallbackQuery == nil || updates[1].CallbackQuery.Data != "leaders" {
		t.Errorf("updates[1] = %+v, want a leaders callback", updates[1])
	}
}

// TestGetUpdates_NotOK tests the ok=false error path
func TestGetUpdates_NotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": false, "result": []}`)) // nolint:errcheck
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		httpClient: &http.Client{},
	}

	if _, err := client.GetUpdates(0); err == nil {
		t.Error("GetUpdates() expected error for ok=false, got nil")
	}
}
