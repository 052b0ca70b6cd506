// internal/formstate/synchronizer.go

// Package formstate keeps the visible form and the persistent store in step
// and tracks the highlighted action button.
package formstate

import (
	"log/slog"

	"shawl/internal/models"
	"shawl/internal/storage"
)

// Form is the visible form the synchronizer reads from and writes into.
type Form interface {
	Values() models.Fields
	SetValues(models.Fields)
}

// Synchronizer mirrors a Form into a Store and back.
type Synchronizer struct {
	store       storage.Store
	form        Form
	highlighter *Highlighter
	logger      *slog.Logger

	// Klucze, których Load nie odczytał; Save ich nie nadpisuje
	unreadable map[string]bool
}

func NewSynchronizer(store storage.Store, form Form, highlighter *Highlighter, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{
		store:       store,
		form:        form,
		highlighter: highlighter,
		logger:      logger,
		unreadable:  make(map[string]bool),
	}
}

// Save writes the five form fields verbatim to the store. Storage errors are
// logged and otherwise ignored. Keys that Load could not read are left alone.
func (s *Synchronizer) Save() {
	values := s.form.Values()
	for _, key := range models.FieldKeys {
		if s.unreadable[key] {
			continue
		}
		if err := s.store.Set(key, values.Get(key)); err != nil {
			s.logger.Debug("failed to save field", "field", key, "error", err)
		}
	}
}

// Load copies the stored fields into the form and restores the highlight.
// A stored hostname only replaces the form's value when it is non-empty. A
// field that cannot be read keeps the form's value and is not saved back.
func (s *Synchronizer) Load() {
	values := s.form.Values()
	for _, key := range models.FieldKeys {
		v, err := s.store.Get(key)
		if err != nil {
			s.logger.Debug("failed to load field", "field", key, "error", err)
			s.unreadable[key] = true
			continue
		}
		delete(s.unreadable, key)
		if key == models.KeyHostname && v == "" {
			continue
		}
		values.Set(key, v)
	}
	s.form.SetValues(values)

	if s.highlighter != nil {
		s.highlighter.Restore()
	}
}

// Highlighter returns the highlighter restored by Load.
func (s *Synchronizer) Highlighter() *Highlighter {
	return s.highlighter
}

// StaticForm is a Form backed by a plain struct, used by the CLI.
type StaticForm struct {
	Fields models.Fields
}

func (f *StaticForm) Values() models.Fields          { return f.Fields }
func (f *StaticForm) SetValues(values models.Fields) { f.Fields = values }
