package handlers

import (
	"net/http"
	"time"

	"github.com/avalondental/scheduling-agent/internal/catalog"
	"github.com/avalondental/scheduling-agent/internal/schedule"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

// AvailabilityHandler exposes open slots directly, without the conversation
// layer. Useful for the front desk and for smoke-testing calendar access.
type AvailabilityHandler struct {
	slots       *schedule.Generator
	horizonDays int
	logger      *logging.Logger
}

// NewAvailabilityHandler creates the availability endpoint handler.
func NewAvailabilityHandler(slots *schedule.Generator, horizonDays int, logger *logging.Logger) *AvailabilityHandler {
	if horizonDays <= 0 {
		horizonDays = schedule.DefaultHorizonDays
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AvailabilityHandler{slots: slots, horizonDays: horizonDays, logger: logger}
}

// AvailabilitySlot is one open slot in the response.
type AvailabilitySlot struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

// AvailabilityResponse is the GET /availability payload.
type AvailabilityResponse struct {
	Location    string             `json:"location"`
	Service     string             `json:"service"`
	DurationMin int                `json:"duration_min"`
	Slots       []AvailabilitySlot `json:"slots"`
}

// HandleAvailability lists open slots for a location and service.
func (h *AvailabilityHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	service := catalog.InferService(r.URL.Query().Get("service"))

	slots, err := h.slots.ListAvailable(r.Context(), location, h.horizonDays, service.Duration)
	if err != nil {
		h.logger.Error("availability lookup failed", "error", err, "location", location)
		writeError(w, http.StatusBadGateway, "calendar unavailable, try again shortly")
		return
	}

	locName := catalog.OfficeFor(location).Name
	if locName == "" {
		locName = "any"
	}
	resp := AvailabilityResponse{
		Location:    locName,
		Service:     service.Name,
		DurationMin: int(service.Duration / time.Minute),
		Slots:       make([]AvailabilitySlot, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, AvailabilitySlot{
			Start:   s.Start,
			End:     s.End(),
			Display: s.Display(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
