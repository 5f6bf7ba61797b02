package domain

// seedTime is 2024-01-01T00:00:00Z in Unix milliseconds. The seed
// dataset uses fixed ids and timestamps so it is byte-for-byte
// reproducible as a test fixture.
const seedTime int64 = 1704067200000

// SeedFolders returns the demo folder hierarchy:
// root → work (→ dev, design), personal.
func SeedFolders() []Folder {
	return []Folder{
		{ID: RootFolderID, Name: "All Bookmarks", IsExpanded: true, CreatedAt: seedTime, Order: 0},
		{ID: "work", Name: "Work", ParentID: RootFolderID, IsExpanded: true, CreatedAt: seedTime, Order: 1},
		{ID: "personal", Name: "Personal", ParentID: RootFolderID, CreatedAt: seedTime, Order: 2},
		{ID: "dev", Name: "Development", ParentID: "work", CreatedAt: seedTime, Order: 3},
		{ID: "design", Name: "Design", ParentID: "work", CreatedAt: seedTime, Order: 4},
	}
}

// SeedBookmarks returns the demo bookmarks. UpdatedAt values are
// staggered so the derived view has a deterministic order.
func SeedBookmarks() []Bookmark {
	return []Bookmark{
		{
			ID:        "bm-seed-github",
			Title:     "GitHub",
			URL:       "https://github.com",
			Icon:      "https://github.com/favicon.ico",
			FolderID:  "dev",
			Tags:      []string{"工具", "开发"},
			Starred:   true,
			CreatedAt: seedTime,
			UpdatedAt: seedTime + 2000,
		},
		{
			ID:        "bm-seed-figma",
			Title:     "Figma",
			URL:       "https://figma.com",
			Icon:      "https://figma.com/favicon.ico",
			FolderID:  "design",
			Tags:      []string{"工具", "设计"},
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        "bm-seed-stackoverflow",
			Title:     "Stack Overflow",
			URL:       "https://stackoverflow.com",
			Icon:      "https://stackoverflow.com/favicon.ico",
			FolderID:  "dev",
			Tags:      []string{"学习", "参考"},
			Starred:   true,
			CreatedAt: seedTime,
			UpdatedAt: seedTime + 1000,
		},
	}
}
