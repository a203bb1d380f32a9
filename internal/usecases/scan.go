package usecases

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"media-manager/internal/domain/entities"
	"media-manager/internal/pkg/fileutils"
	"media-manager/internal/pkg/logging"
	apperrors "media-manager/pkg/errors"
	"media-manager/pkg/file"

	"github.com/dustin/go-humanize"
)

type ScanService interface {
	// ScanDirectory walks the tree rooted at path and returns one record per
	// readable media file. Order of the result is not part of the contract.
	ScanDirectory(path string) ([]entities.MediaFile, error)
	// FindDuplicates groups records by size and case-folded name, keeping
	// only groups with at least two members.
	FindDuplicates(files []entities.MediaFile) map[string][]entities.MediaFile
}

type scanService struct {
	logger *slog.Logger
}

func NewScanService(logger *slog.Logger) ScanService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &scanService{logger: logger}
}

func (s *scanService) ScanDirectory(path string) ([]entities.MediaFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.ErrInvalidInput("directory path cannot be empty")
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, apperrors.ErrInvalidInput(fmt.Sprintf("invalid path: %s", path))
	}

	// All precondition checks run before any traversal so bad input is
	// reported as a client error, not a scan failure.
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrInvalidInput(fmt.Sprintf("invalid path: does not exist: %s", root))
		}
		return nil, apperrors.ErrIOFailure(fmt.Sprintf("cannot stat directory %s", root), err)
	}
	if !info.IsDir() {
		return nil, apperrors.ErrInvalidInput(fmt.Sprintf("invalid path: not a directory: %s", root))
	}
	if !fileutils.Readable(root) {
		return nil, apperrors.ErrInvalidInput(fmt.Sprintf("permission denied: cannot read directory: %s", root))
	}

	s.logger.Info("starting directory scan", "path", root)

	var found []entities.MediaFile
	var totalBytes int64
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Traversal failures abort the whole scan; only per-file
			// attribute errors below are isolated.
			return err
		}
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if !file.IsMediaFile(d.Name()) {
			return nil
		}
		if !fileutils.Readable(p) {
			s.logger.Warn("skipping unreadable file", "path", p)
			return nil
		}
		// Stat follows symlinks, so a link to a regular media file is
		// inventoried with its target's metadata. Links to directories or
		// other non-regular targets fall out below.
		fi, err := os.Stat(p)
		if err != nil {
			// One locked or vanished file must not fail the scan.
			s.logger.Warn("cannot read file attributes, skipping", "path", p, "error", err)
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		record := entities.NewMediaFile(p, fi)
		found = append(found, record)
		totalBytes += fi.Size()
		s.logger.Debug("found media file", "path", p)
		return nil
	})
	if walkErr != nil {
		s.logger.Error("directory walk failed", "path", root, "error", walkErr)
		return nil, apperrors.ErrIOFailure(fmt.Sprintf("scan failed for %s", root), walkErr)
	}

	s.logger.Info("scan complete",
		"path", root,
		"files", len(found),
		"size", humanize.IBytes(uint64(totalBytes)))
	return found, nil
}

func (s *scanService) FindDuplicates(files []entities.MediaFile) map[string][]entities.MediaFile {
	grouped := make(map[string][]entities.MediaFile)
	for _, f := range files {
		key := f.DuplicateKey()
		grouped[key] = append(grouped[key], f)
	}

	// Singleton groups are not duplicates
	duplicates := make(map[string][]entities.MediaFile)
	for key, members := range grouped {
		if len(members) > 1 {
			duplicates[key] = members
		}
	}
	return duplicates
}
