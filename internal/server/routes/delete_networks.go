package routes

import (
	"errors"
	"net/http"

	"github.com/nexus-nlp/nexus/internal/server/middleware"
	"github.com/nexus-nlp/nexus/pkg/logger"
	"github.com/nexus-nlp/nexus/pkg/store"
	"github.com/nexus-nlp/nexus/pkg/store/base"

	"github.com/labstack/echo/v4"
)

// DeleteNetworkHandler removes a stored network with all nodes and edges.
func DeleteNetworkHandler(c echo.Context) error {
	type deleteNetworkResponse struct {
		Message string `json:"message"`
	}

	id := c.Param("id")
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	networkStorage := base.NewNetworkDBStorageWithConnection(conn)
	if err := networkStorage.DeleteNetwork(ctx, id); err != nil {
		if errors.Is(err, store.ErrNetworkNotFound) {
			return c.JSON(http.StatusNotFound, deleteNetworkResponse{
				Message: "Network not found",
			})
		}
		logger.Error("Failed to delete network", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, deleteNetworkResponse{
			Message: "Internal server error",
		})
	}

	logger.Info("Deleted network", "id", id)
	return c.JSON(http.StatusOK, deleteNetworkResponse{
		Message: "Deleted",
	})
}
