package errors

import (
	stderrors "errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleError renders a service error as a JSON response. Known FileError
// codes map to specific statuses; anything else is a 500.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var fe *FileError
	if stderrors.As(err, &fe) {
		// Log the wrapped cause for debugging; clients only see code+message.
		if fe.Err != nil {
			log.Printf("File error [%s]: %v", fe.Code, fe.Err)
		}

		var status int
		switch fe.Code {
		case CodeInvalidInput:
			status = fiber.StatusBadRequest
		case CodeNotFound:
			status = fiber.StatusNotFound
		case CodeAlreadyExists:
			status = fiber.StatusConflict
		case CodePermissionDenied:
			status = fiber.StatusForbidden
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   fe.Code,
			"message": fe.Message,
		})
	}

	// Fallback for errors that escaped the taxonomy
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "unexpected server error",
	})
}
