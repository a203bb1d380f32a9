package routers

import (
	"log/slog"

	"media-manager/internal/delivery/http/handlers"
	"media-manager/internal/pkg/config"
	"media-manager/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupFileRoutes(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	scanService := usecases.NewScanService(logger)
	fileService := usecases.NewFileService(logger)

	scanHandler := handlers.NewScanHandler(scanService, cfg)
	fileHandler := handlers.NewFileHandler(fileService)

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/files/scan", scanHandler.ScanDirectory)
	api.Put("/files/rename", fileHandler.RenameFile)
	api.Delete("/files/:id", fileHandler.DeleteFile)
}
