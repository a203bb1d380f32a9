package handlers

import (
	"strings"

	"media-manager/internal/domain/dto"
	"media-manager/internal/domain/entities"
	"media-manager/internal/pkg/config"
	"media-manager/internal/usecases"
	apperrors "media-manager/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ScanHandler struct {
	scanService usecases.ScanService
	cfg         *config.Config
}

func NewScanHandler(scanService usecases.ScanService, cfg *config.Config) *ScanHandler {
	return &ScanHandler{scanService: scanService, cfg: cfg}
}

// ScanDirectory
//
// @Summary      Scan Directory
// @Description  Recursively scans a directory for media files and returns one page of records plus duplicate groups over the full result
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ScanRequest true "Scan request"
// @Success      200      {object}  dto.PagedScanResponse
// @Failure      400      {object}  dto.ErrorResponse "Invalid path or pagination"
// @Failure      403      {object}  dto.ErrorResponse "Permission denied"
// @Failure      500      {object}  dto.ErrorResponse "Scan I/O failure"
// @Router       /files/scan [post]
func (h *ScanHandler) ScanDirectory(c *fiber.Ctx) error {
	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: "malformed request body",
		})
	}
	if strings.TrimSpace(req.Path) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: "directory path is required",
		})
	}
	if req.Page < 0 {
		return apperrors.HandleError(c, apperrors.ErrInvalidInput("page index cannot be negative"))
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = h.cfg.Scan.DefaultPageSize
	}
	if pageSize > h.cfg.Scan.MaxPageSize {
		pageSize = h.cfg.Scan.MaxPageSize
	}

	files, err := h.scanService.ScanDirectory(req.Path)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	// Duplicates are computed over the whole result set, not the page
	duplicates := h.scanService.FindDuplicates(files)
	content, totalPages := paginate(files, req.Page, pageSize)

	return c.JSON(dto.PagedScanResponse{
		Content:     content,
		CurrentPage: req.Page,
		TotalItems:  int64(len(files)),
		TotalPages:  totalPages,
		Duplicates:  duplicates,
	})
}

// paginate slices one zero-based page out of files. A page past the end
// yields an empty slice, not an error.
func paginate(files []entities.MediaFile, page, pageSize int) ([]entities.MediaFile, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(files) + pageSize - 1) / pageSize

	offset := page * pageSize
	if offset >= len(files) {
		return []entities.MediaFile{}, totalPages
	}
	end := offset + pageSize
	if end > len(files) {
		end = len(files)
	}
	return files[offset:end], totalPages
}
