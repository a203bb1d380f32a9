package dto

import "media-manager/internal/domain/entities"

type ScanRequest struct {
	Path     string `json:"path"`
	Page     int    `json:"page"`      // zero-based
	PageSize int    `json:"page_size"` // 0 falls back to the configured default
}

type RenameRequest struct {
	ID      string `json:"id"` // fileid encoding of the current path
	NewName string `json:"new_name"`
}

// PagedScanResponse carries one page of records plus the duplicate groups
// computed over the full scan, regardless of pagination.
type PagedScanResponse struct {
	Content     []entities.MediaFile            `json:"content"`
	CurrentPage int                             `json:"current_page"`
	TotalItems  int64                           `json:"total_items"`
	TotalPages  int                             `json:"total_pages"`
	Duplicates  map[string][]entities.MediaFile `json:"duplicates"`
}

type RenameResponse struct {
	File    entities.MediaFile `json:"file"`
	Warning string             `json:"warning,omitempty"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
