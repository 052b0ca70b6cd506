// internal/cli/tui.go

package cli

import (
	"os"

	"shawl/internal/logging"
	"shawl/internal/ui"
	"shawl/internal/ui/views"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func runTUI(app *App) error {
	// stdout należy do TUI, logi idą do pliku
	logger, closer, err := logging.NewFile(app.cfg.Logging.File, app.cfg.Logging.Level)
	if err != nil {
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}
	app.logger = logger

	st, err := app.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	brand, err := app.cfg.ResolveBrand()
	if err != nil {
		return err
	}

	d, err := app.newDispatcher(logger)
	if err != nil {
		return err
	}

	uiModel := ui.NewModel(ui.Options{
		Brand:      brand,
		Actions:    app.cfg.Actions(),
		Marker:     app.cfg.UI.Marker,
		Store:      st,
		Dispatcher: d,
		Logger:     logger,
	})

	// Ustaw domyślny rozmiar terminala
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		uiModel.SetTerminalSize(w, h)
	}

	logger.Info("starting", "base_url", app.cfg.API.BaseURL, "policy", d.Policy(), "storage", app.cfg.Storage.Backend)

	p := tea.NewProgram(views.NewProgramModel(uiModel), tea.WithAltScreen())
	_, err = p.Run()

	// Żądania w locie kończą się przed wyjściem, każde ma swój timeout
	d.Wait()
	return err
}
