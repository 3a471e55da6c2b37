package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gsync/config"
	"gsync/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishSyncRequested(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	publisher := NewLocalHTTPPublisher(ts.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.SyncRequestedEvent{
		RequestID: "req-1",
		UserID:    "0b6a9f7e-9d3c-4b43-a0f2-51f8c5b1e9aa",
		SyncType:  "email",
		Source:    "scheduler",
	}

	require.NoError(t, publisher.PublishSyncRequested(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "email", received.Message.Attributes["sync_type"])
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SyncRequestedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	publisher := NewLocalHTTPPublisher(ts.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishSyncRequested(context.Background(), &service.SyncRequestedEvent{UserID: "u", SyncType: "calendar"})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/pubsub/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
