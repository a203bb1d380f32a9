package usecases

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"media-manager/internal/domain/entities"
	"media-manager/internal/pkg/fileutils"
	"media-manager/internal/pkg/logging"
	apperrors "media-manager/pkg/errors"
	"media-manager/pkg/file"
)

type FileService interface {
	// RenameFile renames the file at currentPath to newName inside the same
	// directory and returns the fresh record plus an optional warning for
	// the caller (e.g. the new name dropped the extension).
	RenameFile(currentPath, newName string) (*entities.MediaFile, string, error)
	// DeleteFile removes the file at path. A missing file is a success: the
	// goal state already holds.
	DeleteFile(path string) error
}

type fileService struct {
	logger *slog.Logger
}

func NewFileService(logger *slog.Logger) FileService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &fileService{logger: logger}
}

func (s *fileService) RenameFile(currentPath, newName string) (*entities.MediaFile, string, error) {
	// Renaming into another directory is not allowed, so the new name must
	// be a bare filename.
	if strings.TrimSpace(newName) == "" || strings.ContainsAny(newName, `/\`) {
		return nil, "", apperrors.ErrInvalidInput(fmt.Sprintf("invalid new filename: %q", newName))
	}

	if _, err := os.Stat(currentPath); err != nil {
		if os.IsNotExist(err) {
			return nil, "", apperrors.ErrNotFound(fmt.Sprintf("file to rename not found: %s", currentPath))
		}
		return nil, "", apperrors.ErrIOFailure(fmt.Sprintf("cannot stat file %s", currentPath), err)
	}

	parent := filepath.Dir(currentPath)
	if !fileutils.Writable(parent) {
		return nil, "", apperrors.ErrPermissionDenied(fmt.Sprintf("cannot write to directory %s", parent))
	}

	newPath := filepath.Join(parent, newName)

	var warning string
	oldExt := file.Extension(filepath.Base(currentPath))
	if newExt := file.Extension(newName); oldExt != "" && newExt == "" {
		warning = fmt.Sprintf("new filename %q is missing an extension, original was %q", newName, oldExt)
		s.logger.Warn("rename target is missing an extension, proceeding anyway",
			"newName", newName, "originalExtension", oldExt)
	}

	if _, err := os.Stat(newPath); err == nil {
		return nil, "", apperrors.ErrAlreadyExists(fmt.Sprintf("a file named %q already exists in the directory", newName))
	} else if !os.IsNotExist(err) {
		return nil, "", apperrors.ErrIOFailure(fmt.Sprintf("cannot stat rename target %s", newPath), err)
	}

	s.logger.Info("renaming file", "from", currentPath, "to", newPath)
	if err := os.Rename(currentPath, newPath); err != nil {
		if fileutils.IsCrossDevice(err) {
			// A partially completed rename must never look like success.
			return nil, "", apperrors.ErrIOFailure("atomic rename not supported across filesystems", err)
		}
		if os.IsPermission(err) {
			return nil, "", apperrors.ErrPermissionDenied(fmt.Sprintf("permission denied renaming %s", currentPath))
		}
		return nil, "", apperrors.ErrIOFailure(fmt.Sprintf("failed to rename %s", currentPath), err)
	}

	info, err := os.Stat(newPath)
	if err != nil {
		return nil, "", apperrors.ErrIOFailure(fmt.Sprintf("renamed file cannot be read back: %s", newPath), err)
	}
	record := entities.NewMediaFile(newPath, info)
	return &record, warning, nil
}

func (s *fileService) DeleteFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// Idempotent: the file is already gone.
			s.logger.Warn("delete requested for missing file", "path", path)
			return nil
		}
		return apperrors.ErrIOFailure(fmt.Sprintf("cannot stat file %s", path), err)
	}

	parent := filepath.Dir(path)
	if !fileutils.Writable(parent) {
		return apperrors.ErrPermissionDenied(fmt.Sprintf("cannot delete from directory %s", parent))
	}

	s.logger.Info("deleting file", "path", path)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			// Deleted concurrently by someone else, still a success.
			return nil
		}
		if os.IsPermission(err) {
			return apperrors.ErrPermissionDenied(fmt.Sprintf("permission denied deleting %s", path))
		}
		return apperrors.ErrIOFailure(fmt.Sprintf("failed to delete %s", path), err)
	}
	return nil
}
