package domain

import "time"

// Bookmark is a saved URL record. The collection is flat; display
// order is always recomputed by the query engine, never stored.
type Bookmark struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Icon      string   `json:"icon,omitempty"`
	FolderID  string   `json:"folder_id"`
	Tags      []string `json:"tags"`
	Starred   bool     `json:"starred"`
	CreatedAt int64    `json:"created_at"` // Unix milliseconds
	UpdatedAt int64    `json:"updated_at"` // Unix milliseconds
}

// NowMillis returns the current time in Unix milliseconds, the
// timestamp unit used throughout the persisted model.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Touch refreshes the UpdatedAt timestamp.
func (b *Bookmark) Touch() {
	b.UpdatedAt = NowMillis()
}

// BookmarkPatch is a partial update. Nil fields are left unchanged.
// Applying any patch refreshes UpdatedAt, even when no field is set.
type BookmarkPatch struct {
	Title    *string   `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	URL      *string   `json:"url,omitempty" validate:"omitempty,min=1"`
	Icon     *string   `json:"icon,omitempty"`
	FolderID *string   `json:"folder_id,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Starred  *bool     `json:"starred,omitempty"`
}

// Apply merges the patch into the bookmark and touches it.
func (p BookmarkPatch) Apply(b *Bookmark) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.FolderID != nil {
		b.FolderID = *p.FolderID
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.Starred != nil {
		b.Starred = *p.Starred
	}
	b.Touch()
}
