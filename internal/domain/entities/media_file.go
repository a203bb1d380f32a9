package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"media-manager/pkg/file"
	"media-manager/pkg/fileid"
)

// MediaFile is one inventory record for a discovered media file. Records are
// built fresh on every scan; nothing is persisted between requests.
type MediaFile struct {
	ID           string    `json:"id"` // fileid encoding of Path
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ParentPath   string    `json:"parentPath"`
	Size         int64     `json:"size"`
	SizeReadable string    `json:"sizeReadable"`
	FileType     string    `json:"fileType"`
	Extension    string    `json:"extension"`
	LastModified time.Time `json:"lastModified"`
}

// NewMediaFile builds a record from an absolute path and its stat result.
func NewMediaFile(path string, info os.FileInfo) MediaFile {
	name := filepath.Base(path)
	ext := file.Extension(name)
	return MediaFile{
		ID:           fileid.Encode(path),
		Name:         name,
		Path:         path,
		ParentPath:   filepath.Dir(path),
		Size:         info.Size(),
		SizeReadable: file.FormatSize(info.Size()),
		FileType:     file.Kind(ext),
		Extension:    ext,
		LastModified: info.ModTime(),
	}
}

// DuplicateKey is the grouping key for duplicate detection: size plus the
// case-folded filename.
func (m MediaFile) DuplicateKey() string {
	return fmt.Sprintf("%d::%s", m.Size, strings.ToLower(m.Name))
}
