package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type SeedHandler struct {
	seeder *service.SeedService
}

// RegisterSeed exposes the starter-catalog loader. The run is idempotent,
// so leaving it unauthenticated only risks a no-op on a populated database.
func RegisterSeed(e *echo.Echo, seeder *service.SeedService) {
	handler := &SeedHandler{seeder: seeder}
	e.POST("/api/seed", handler.seed)
}

func (h *SeedHandler) seed(c echo.Context) error {
	result, err := h.seeder.Run(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("seed handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("seed failed"))
	}
	if !result.Seeded {
		return c.JSON(http.StatusOK, util.Message("database already seeded"))
	}
	return c.JSON(http.StatusOK, util.Message(fmt.Sprintf("seeded %d tours and %d blogs", result.Tours, result.Blogs)))
}
