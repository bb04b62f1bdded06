package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/api/metrics"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// WatchHandler streams live simulation events over a websocket. Fan-out
// goes through the progress stream so it works across server replicas.
type WatchHandler struct {
	service  ports.SimulationService
	stream   ports.ProgressStream
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewWatchHandler(service ports.SimulationService, stream ports.ProgressStream, log zerolog.Logger) *WatchHandler {
	return &WatchHandler{
		service: service,
		stream:  stream,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect cross-origin, same as the legacy endpoints.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Watch handles GET /v1/simulations/:id/watch. Ownership is checked
// before the upgrade so auth failures still render the JSON envelope.
//
// @Summary      Stream live status and progress updates for a simulation
// @Tags         simulations
// @Security     BearerAuth
// @Param        id  path  string  true  "Simulation id"
// @Success      101
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/simulations/{id}/watch [get]
func (h *WatchHandler) Watch(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	simulationID := c.Param("id")

	sim, err := h.service.GetSimulation(c.Request().Context(), userID, simulationID)
	if err != nil {
		return err
	}

	events, cancel, err := h.stream.Subscribe(c.Request().Context(), simulationID)
	if err != nil {
		return err
	}
	defer cancel()

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	metrics.WatchersActive.Inc()
	defer metrics.WatchersActive.Dec()

	// Read pump: detects the client closing the connection. Inbound
	// payloads are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// First frame is a snapshot of the current state so late subscribers
	// are not left waiting for the next tick.
	snapshot := ports.SimulationEvent{
		SimulationID: sim.ID,
		Status:       sim.Status,
		Progress:     sim.Progress,
		Timestamp:    time.Now().UTC(),
	}
	if err := ws.WriteJSON(snapshot); err != nil {
		return nil
	}
	if sim.Status.Terminal() {
		return nil
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := ws.WriteJSON(event); err != nil {
				return nil
			}
			if event.Status.Terminal() {
				return nil
			}
		}
	}
}
