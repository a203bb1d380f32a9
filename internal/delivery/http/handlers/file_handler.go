package handlers

import (
	"fmt"
	"strings"

	"media-manager/internal/domain/dto"
	"media-manager/internal/usecases"
	apperrors "media-manager/pkg/errors"
	"media-manager/pkg/fileid"

	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	fileService usecases.FileService
}

func NewFileHandler(fileService usecases.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// RenameFile
//
// @Summary      Rename File
// @Description  Renames the file identified by its encoded id within its directory
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RenameRequest true "Rename request"
// @Success      200      {object}  dto.RenameResponse
// @Failure      400      {object}  dto.ErrorResponse "Invalid id or filename"
// @Failure      403      {object}  dto.ErrorResponse "Permission denied"
// @Failure      404      {object}  dto.ErrorResponse "File not found"
// @Failure      409      {object}  dto.ErrorResponse "Destination already exists"
// @Router       /files/rename [put]
func (h *FileHandler) RenameFile(c *fiber.Ctx) error {
	var req dto.RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: "malformed request body",
		})
	}
	if req.ID == "" || strings.TrimSpace(req.NewName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: "file id and new name are required",
		})
	}

	// Clients never send raw paths for mutations, only encoded ids
	path, err := fileid.Decode(req.ID)
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrInvalidInput("invalid file id format"))
	}

	updated, warning, err := h.fileService.RenameFile(path, req.NewName)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(dto.RenameResponse{File: *updated, Warning: warning})
}

// DeleteFile
//
// @Summary      Delete File
// @Description  Deletes the file identified by its encoded id; deleting an already missing file succeeds
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        id   path      string true "Encoded file id"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse "Invalid id"
// @Failure      403  {object}  dto.ErrorResponse "Permission denied"
// @Router       /files/{id} [delete]
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: "file id is required",
		})
	}

	path, err := fileid.Decode(id)
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrInvalidInput("invalid file id format"))
	}

	if err := h.fileService.DeleteFile(path); err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(dto.DeleteResponse{Message: fmt.Sprintf("File deleted successfully: %s", path)})
}
