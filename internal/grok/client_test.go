package grok

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotReq))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"  Мы делаем ботов.  "}}]}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "test-key", "")
	reply, err := c.Ask("Чем вы занимаетесь?")
	require.NoError(t, err)
	assert.Equal(t, "Мы делаем ботов.", reply)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, DefaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "О нас, Кейсы")
	assert.Equal(t, "Чем вы занимаетесь?", gotReq.Messages[1].Content)
}

func TestAskAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "bad-key", "")
	_, err := c.Ask("вопрос")
	require.Error(t, err)

	assert.Contains(t, UserMessage(err), "API-ключ")
}

func TestAskEmptyReply(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":""}}]}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "k", "")
	_, err := c.Ask("вопрос")
	require.Error(t, err)

	// Not an API error, so no user-facing message
	assert.Empty(t, UserMessage(err))
}

func TestUserMessageStatuses(t *testing.T) {
	assert.Contains(t, UserMessage(&APIError{StatusCode: 402}), "Недостаточно средств")
	assert.Contains(t, UserMessage(&APIError{StatusCode: 429}), "Слишком много запросов")
	assert.Empty(t, UserMessage(&APIError{StatusCode: 500}))
}
