package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flight-itinerary/internal/errs"
	"github.com/deppfellow/flight-itinerary/internal/model"
	"github.com/deppfellow/flight-itinerary/internal/server"
	"github.com/deppfellow/flight-itinerary/internal/service"
)

type ItineraryHandler struct {
	Handler
	itinerary *service.ItineraryService
}

func NewItineraryHandler(s *server.Server, itinerary *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{
		Handler:   NewHandler(s),
		itinerary: itinerary,
	}
}

// ComputeItinerary returns the echo handler for POST /compute.
func (h *ItineraryHandler) ComputeItinerary() echo.HandlerFunc {
	return Handle[*model.ComputeItineraryRequest, *model.ComputeItineraryResponse](
		h.Handler,
		h.compute,
		http.StatusOK,
		func() *model.ComputeItineraryRequest { return &model.ComputeItineraryRequest{} },
	)
}

func (h *ItineraryHandler) compute(c echo.Context, req *model.ComputeItineraryRequest) (*model.ComputeItineraryResponse, error) {
	result, err := h.itinerary.Calculate(c.Request().Context(), req.FlightPathSet())
	if err != nil {
		if httpErr := errs.FromItineraryError(err); httpErr != nil {
			return nil, httpErr
		}
		return nil, errs.NewInternalServerError()
	}

	return &model.ComputeItineraryResponse{Itinerary: result}, nil
}
