// Package sse implements Server-Sent Events for pushing catalog
// changes to connected clients.
package sse

import (
	"time"

	"github.com/markstashapp/markstash-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventBookmarkCreated represents a bookmark creation event.
	EventBookmarkCreated EventType = "bookmark.created"
	// EventBookmarkUpdated represents a bookmark update event. Also
	// emitted for star toggles, moves, and async title enrichment.
	EventBookmarkUpdated EventType = "bookmark.updated"
	// EventBookmarkDeleted represents a bookmark deletion event.
	EventBookmarkDeleted EventType = "bookmark.deleted"

	// EventFolderCreated represents a folder creation event.
	EventFolderCreated EventType = "folder.created"
	// EventFolderUpdated represents a folder rename, move, or
	// expand/collapse event.
	EventFolderUpdated EventType = "folder.updated"
	// EventFolderDeleted represents a folder deletion event. The
	// payload lists everything the cascade removed.
	EventFolderDeleted EventType = "folder.deleted"

	// EventThemeChanged represents a theme preference change.
	EventThemeChanged EventType = "settings.theme_changed"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`
}

// NewEvent creates an event of the given type carrying data.
func NewEvent(eventType EventType, data any) Event {
	return Event{
		Timestamp: time.Now(),
		Data:      data,
		Type:      eventType,
	}
}

// BookmarkEventData is the payload for bookmark create/update events.
// The full record is included so clients can render without a refetch.
type BookmarkEventData struct {
	Bookmark domain.Bookmark `json:"bookmark"`
}

// BookmarksDeletedEventData is the payload for bookmark delete events.
type BookmarksDeletedEventData struct {
	BookmarkIDs []string `json:"bookmark_ids"`
}

// FolderEventData is the payload for folder create/update events.
type FolderEventData struct {
	Folder domain.Folder `json:"folder"`
}

// FolderDeletedEventData is the payload for folder delete events.
type FolderDeletedEventData struct {
	FolderIDs   []string `json:"folder_ids"`
	BookmarkIDs []string `json:"bookmark_ids"`
}

// ThemeEventData is the payload for theme change events.
type ThemeEventData struct {
	Theme domain.Theme `json:"theme"`
}

// HeartbeatEventData is the payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewHeartbeatEvent creates a keepalive event.
func NewHeartbeatEvent() Event {
	now := time.Now()
	return Event{
		Timestamp: now,
		Data:      HeartbeatEventData{ServerTime: now},
		Type:      EventHeartbeat,
	}
}
