package models

import (
	"path/filepath"
	"strings"
	"time"
)

// Attachment represents a file attached to an issue or comment.
type Attachment struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Size               int64      `json:"size"`
	DownloadCount      int64      `json:"download_count"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UUID               string     `json:"uuid"`
	BrowserDownloadURL string     `json:"browser_download_url"`
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".svg": true, ".bmp": true, ".heic": true, ".heif": true,
}

// IsImage reports whether the attachment looks like an image by extension.
func (a *Attachment) IsImage() bool {
	return imageExtensions[a.FileExtension()]
}

// FileExtension returns the lowercased file extension including the dot.
func (a *Attachment) FileExtension() string {
	return strings.ToLower(filepath.Ext(a.Name))
}
