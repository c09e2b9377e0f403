// Package cfwidget is a typed client for the CFWidget companion API.
//
// CFWidget mirrors public CurseForge project data without requiring an API
// key. Its schema differs from the Core API: release types are strings and
// projects are addressable by site path as well as by id.
package cfwidget

import "time"

// ReleaseType is string-encoded here, unlike the integer enum the Core API
// uses.
type ReleaseType string

const (
	Release ReleaseType = "Release"
	Beta    ReleaseType = "Beta"
	Alpha   ReleaseType = "Alpha"
)

type ProjectUrls struct {
	Curseforge string `json:"curseforge"`
	Project    string `json:"project"`
}

type ProjectDownloads struct {
	Monthly int64 `json:"monthly"`
	Total   int64 `json:"total"`
}

type ProjectMember struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Id       int    `json:"id"`
}

type ProjectFile struct {
	Id          int         `json:"id"`
	Url         string      `json:"url"`
	Display     string      `json:"display"`
	Name        string      `json:"name"`
	Quality     ReleaseType `json:"quality"`
	GameVersion string      `json:"version"`
	Filesize    int64       `json:"filesize"`
	// Versions mixes game versions and loader names, e.g. "1.18.1" and "Forge".
	Versions   []string  `json:"versions"`
	Downloads  int64     `json:"downloads"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Project struct {
	Id          int              `json:"id"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary"`
	Description string           `json:"description"`
	Game        string           `json:"game"`
	Type        string           `json:"type"`
	Urls        ProjectUrls      `json:"urls"`
	Thumbnail   string           `json:"thumbnail"`
	CreatedAt   time.Time        `json:"created_at"`
	Downloads   ProjectDownloads `json:"downloads"`
	License     string           `json:"license"`
	Donate      string           `json:"donate"`
	Categories  []string         `json:"categories"`
	Members     []ProjectMember  `json:"members"`
	Links       []string         `json:"links"`
	Files       []ProjectFile    `json:"files"`
	// Versions maps a game version to its latest file for that version.
	Versions map[string]ProjectFile `json:"versions"`
	Download ProjectFile            `json:"download"`
}
