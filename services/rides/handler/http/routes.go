package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/internal/utils"
)

// RouteHandler decodes encoded route polylines
type RouteHandler struct{}

func NewRouteHandler() *RouteHandler {
	return &RouteHandler{}
}

// DecodeRoute returns the route's points, each with its geohash, and the
// route length
func (h *RouteHandler) DecodeRoute(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Routes.Decode")

	var req models.DecodeRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	points, err := utils.DecodePolyline(req.Polyline)
	if err != nil {
		if errors.Is(err, utils.ErrMalformedPolyline) {
			logger.Warn("Rejected malformed polyline", logger.Int("length", len(req.Polyline)), logger.Err(err))
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "")
	}

	distance := utils.AnnotateRoute(points, utils.RouteGeohashPrecision)
	nrpkg.AddTransactionAttribute(txn, "route_points", len(points))

	return utils.SuccessResponse(c, http.StatusOK, "", models.DecodeRouteResponse{
		Points:     points,
		Count:      len(points),
		DistanceKm: distance,
	})
}
