package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nexus-nlp/nexus/internal/queue"
	"github.com/nexus-nlp/nexus/internal/server/middleware"
	"github.com/nexus-nlp/nexus/internal/storage"
	"github.com/nexus-nlp/nexus/pkg/loader"
	"github.com/nexus-nlp/nexus/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateNetworkHandler accepts a mention document upload and queues an
// analysis job. The document is validated before the upload is accepted so
// malformed input fails fast instead of in the worker.
func CreateNetworkHandler(c echo.Context) error {
	type createNetworkBody struct {
		Name         string `form:"name" validate:"required"`
		MinMentions  int    `form:"min_mentions" validate:"omitempty,min=1"`
		WindowRadius int    `form:"window_radius" validate:"omitempty,min=0,max=10"`
		Sentiment    bool   `form:"sentiment"`
	}

	type createNetworkResponse struct {
		Message string `json:"message"`
		FileKey string `json:"file_key,omitempty"`
	}

	data := new(createNetworkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid request body",
		})
	}

	upload, err := c.FormFile("mentions")
	if err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Missing mentions file",
		})
	}

	src, err := upload.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid mentions file",
		})
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid mentions file",
		})
	}

	if _, err := loader.ParseMentionDocument(raw); err != nil {
		logger.Debug("Rejected mention document", "name", data.Name, "err", err)
		return c.JSON(http.StatusUnprocessableEntity, createNetworkResponse{
			Message: err.Error(),
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	fileID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}

	fileKey, err := storage.PutFile(ctx, app.S3, "mentions", fileID, bytes.NewReader(raw))
	if err != nil {
		logger.Error("Failed to upload mention document", "err", err)
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}

	msg := queue.AnalyzeNetworkMsg{
		Message:      "Analyze network",
		Name:         data.Name,
		FileKey:      fileKey,
		MinMentions:  data.MinMentions,
		WindowRadius: data.WindowRadius,
		Sentiment:    data.Sentiment,
	}
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}

	if err := queue.PublishFIFO(app.Queue, queue.AnalyzeQueue, msgBytes); err != nil {
		logger.Error("Failed to publish analysis job", "err", err)
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}

	logger.Info("Queued network analysis", "name", data.Name, "file_key", fileKey)
	return c.JSON(http.StatusAccepted, createNetworkResponse{
		Message: "Analysis queued",
		FileKey: fileKey,
	})
}
