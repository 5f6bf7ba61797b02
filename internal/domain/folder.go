package domain

// RootFolderID is the reserved id of the implicit top-level container.
// Selecting it (or selecting nothing) scopes queries to everything.
const RootFolderID = "root"

// Folder is a named node in the bookmark hierarchy. The hierarchy is
// stored flat with parent pointers; tree shape is derived on demand.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// ParentID is empty for top-level folders.
	ParentID   string `json:"parent_id,omitempty"`
	IsExpanded bool   `json:"is_expanded"`
	CreatedAt  int64  `json:"created_at"` // Unix milliseconds
	// Order is the sort key among siblings. New folders default to
	// their creation timestamp, which appends them after existing ones.
	Order int64 `json:"order"`
}
