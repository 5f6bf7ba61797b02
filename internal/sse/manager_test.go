package sse

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstashapp/markstash-server/internal/domain"
	"github.com/markstashapp/markstash-server/internal/logger"
)

func newTestManager() *Manager {
	return NewManager(logger.New(logger.Config{Writer: io.Discard, Format: "json"}))
}

func TestManager_ConnectDisconnect(t *testing.T) {
	m := newTestManager()

	client, err := m.Connect()
	require.NoError(t, err)
	assert.Equal(t, 1, m.ClientCount())

	m.Disconnect(client.ID)
	assert.Equal(t, 0, m.ClientCount())

	// Disconnecting twice is harmless.
	m.Disconnect(client.ID)
}

func TestManager_EmitReachesClient(t *testing.T) {
	m := newTestManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Start(ctx)

	client, err := m.Connect()
	require.NoError(t, err)

	m.Emit(NewEvent(EventBookmarkCreated, BookmarkEventData{
		Bookmark: domain.Bookmark{ID: "bm-1", Title: "GitHub"},
	}))

	select {
	case event := <-client.EventChan:
		assert.Equal(t, EventBookmarkCreated, event.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestManager_EmitAfterShutdownIsDropped(t *testing.T) {
	m := newTestManager()
	ctx, cancel := context.WithCancel(context.Background())
	go m.Start(ctx)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	require.NoError(t, m.Shutdown(shutdownCtx))

	// Must not panic on the closed channel.
	m.Emit(NewEvent(EventFolderUpdated, FolderEventData{}))
}

func TestManager_EmitIgnoresForeignTypes(t *testing.T) {
	m := newTestManager()
	m.Emit("not an event")
}
