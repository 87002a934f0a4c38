package routes

import (
	"errors"
	"net/http"

	"github.com/nexus-nlp/nexus/internal/server/middleware"
	"github.com/nexus-nlp/nexus/pkg/common"
	"github.com/nexus-nlp/nexus/pkg/logger"
	"github.com/nexus-nlp/nexus/pkg/store"
	"github.com/nexus-nlp/nexus/pkg/store/base"

	"github.com/labstack/echo/v4"
)

// GetNetworksHandler lists all stored networks, newest first.
func GetNetworksHandler(c echo.Context) error {
	type getNetworksResponse struct {
		Message  string                 `json:"message"`
		Networks []store.NetworkSummary `json:"networks,omitempty"`
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	networkStorage := base.NewNetworkDBStorageWithConnection(conn)
	summaries, err := networkStorage.ListNetworks(ctx)
	if err != nil {
		logger.Error("Failed to list networks", "err", err)
		return c.JSON(http.StatusInternalServerError, getNetworksResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getNetworksResponse{
		Message:  "OK",
		Networks: summaries,
	})
}

// GetNetworkHandler returns one network including nodes, edges, and metrics.
func GetNetworkHandler(c echo.Context) error {
	type getNetworkResponse struct {
		Message string        `json:"message"`
		Network *common.Graph `json:"network,omitempty"`
	}

	id := c.Param("id")
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	networkStorage := base.NewNetworkDBStorageWithConnection(conn)
	graph, err := networkStorage.GetNetwork(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNetworkNotFound) {
			return c.JSON(http.StatusNotFound, getNetworkResponse{
				Message: "Network not found",
			})
		}
		logger.Error("Failed to load network", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, getNetworkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getNetworkResponse{
		Message: "OK",
		Network: graph,
	})
}
