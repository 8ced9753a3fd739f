package server

import (
	"encoding/json"
	"net/http"

	"rogue-soccer/internal/engine"
)

// DebugHandler exposes copies of the match state taken after each tick.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
}

// /debug/entities - every entity including path and kick state
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	entities := h.Service.DebugEntities()
	if len(entities) == 0 {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, entities)
}

// /debug/queue - teammates still waiting for their turn this round
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	queue := h.Service.DebugQueue()
	if len(queue) == 0 {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, queue)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	// empty lists render as [] rather than null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}
