package hfclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run(`успешный ответ`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "POST", r.Method)
			require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var payload summarizeRequest
			require.Nil(t, json.NewDecoder(r.Body).Decode(&payload))
			require.Equal(t, "норм чувак", payload.Inputs)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"summary_text":"Надежный специалист"}]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		summary, err := client.Summarize(context.TODO(), "норм чувак")
		require.Nil(t, err)
		require.Equal(t, "Надежный специалист", summary)
	})

	t.Run(`некорректный статус ответа`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		_, err := client.Summarize(context.TODO(), "текст")
		require.NotNil(t, err)
	})

	t.Run(`нечитаемое тело ответа`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"loading"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		_, err := client.Summarize(context.TODO(), "текст")
		require.NotNil(t, err)
	})

	t.Run(`пустой список в ответе`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token")
		_, err := client.Summarize(context.TODO(), "текст")
		require.NotNil(t, err)
	})

	t.Run(`недоступный сервис`, func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "test-token")
		_, err := client.Summarize(context.TODO(), "текст")
		require.NotNil(t, err)
	})
}
