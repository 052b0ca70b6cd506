// internal/formstate/highlight.go

package formstate

import (
	"log/slog"

	"shawl/internal/models"
	"shawl/internal/storage"
)

// Marker styles for the highlighted button.
const (
	MarkerBorder       = "border"
	MarkerBorderFilter = "border+filter"
)

// Highlighter tracks which action button was pressed last.
type Highlighter struct {
	store   storage.Store
	buttons []string
	marked  map[string]bool
	current string
	logger  *slog.Logger
}

// NewHighlighter returns a Highlighter over the given button ids.
func NewHighlighter(store storage.Store, buttons []string, logger *slog.Logger) *Highlighter {
	if logger == nil {
		logger = slog.Default()
	}
	b := make([]string, len(buttons))
	copy(b, buttons)
	return &Highlighter{
		store:   store,
		buttons: b,
		marked:  make(map[string]bool, len(buttons)),
		logger:  logger,
	}
}

// Highlight clears the marker from every button, marks id and records it.
// An id that matches no button leaves every button unmarked but is still recorded.
func (h *Highlighter) Highlight(id string) {
	h.apply(id)

	if err := h.store.Set(models.KeyHighlightedButton, id); err != nil {
		h.logger.Debug("failed to store highlighted button", "button", id, "error", err)
	}
}

// Restore re-applies the stored highlight without writing it back.
func (h *Highlighter) Restore() {
	id, err := h.store.Get(models.KeyHighlightedButton)
	if err != nil {
		h.logger.Debug("failed to read highlighted button", "error", err)
	}
	h.apply(id)
}

func (h *Highlighter) apply(id string) {
	for _, b := range h.buttons {
		h.marked[b] = false
	}
	if h.has(id) {
		h.marked[id] = true
	}
	h.current = id
}

// Highlighted returns the last recorded id.
func (h *Highlighter) Highlighted() string {
	return h.current
}

// IsMarked reports whether the button carries the marker.
func (h *Highlighter) IsMarked(id string) bool {
	return h.marked[id]
}

// Marked returns the marked buttons in button order.
func (h *Highlighter) Marked() []string {
	var out []string
	for _, b := range h.buttons {
		if h.marked[b] {
			out = append(out, b)
		}
	}
	return out
}

// Buttons returns the button ids in order.
func (h *Highlighter) Buttons() []string {
	out := make([]string, len(h.buttons))
	copy(out, h.buttons)
	return out
}

func (h *Highlighter) has(id string) bool {
	for _, b := range h.buttons {
		if b == id {
			return true
		}
	}
	return false
}
