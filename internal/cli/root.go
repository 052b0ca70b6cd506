// internal/cli/root.go

package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"shawl/internal/config"
	"shawl/internal/crypto"
	"shawl/internal/dispatch"
	apperr "shawl/internal/error"
	"shawl/internal/formstate"
	"shawl/internal/logging"
	"shawl/internal/models"
	"shawl/internal/storage"

	"github.com/spf13/cobra"
)

// App holds the state shared by every command.
type App struct {
	ConfigPath string
	LogLevel   string
	Ephemeral  bool

	cfg    *config.Config
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "shawl",
		Short:         "Terminal client for a SLURM control panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive form
  shawl

  # Press a button from a script
  shawl dispatch rsync_up --wait

  # Store form values
  shawl set hostname=login.cluster username=dev
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bez podkomendy uruchamiamy TUI
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd.ErrOrStderr())
	}

	defaultConfig, err := config.GetDefaultConfigPath()
	if err != nil {
		defaultConfig = config.DefaultConfigFileName
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("SHAWL_CONFIG", defaultConfig), "Path to config file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("SHAWL_LOG_LEVEL", ""), "Log level (debug|info|warn|error), overrides logging.level")
	cmd.PersistentFlags().BoolVar(&app.Ephemeral, "ephemeral", false, "Keep form state in memory only")

	cmd.AddCommand(newDispatchCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newActionsCmd(app))
	cmd.AddCommand(newRestoreCmd(app))

	return cmd
}

func (app *App) load(stderr io.Writer) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.LogLevel != "" {
		cfg.Logging.Level = app.LogLevel
	}
	if app.Ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}
	app.cfg = cfg
	app.logger = logging.New(stderr, cfg.Logging.Level)
	return nil
}

// openStore opens the configured backend, wrapping it with password
// encryption when enabled. A passphrase that cannot decrypt the stored
// password is rejected here, before a save could overwrite it.
func (app *App) openStore() (storage.Store, error) {
	st, err := storage.Open(storage.Options{
		Backend: app.cfg.Storage.Backend,
		Path:    app.cfg.Storage.Path,
	})
	if err != nil {
		return nil, err
	}
	if !app.cfg.Storage.EncryptPassword {
		return st, nil
	}

	passphrase := os.Getenv(config.StorageKeyEnv)
	if passphrase == "" {
		st.Close()
		return nil, apperr.New(apperr.ConfigError, config.StorageKeyEnv+" must be set when storage.encrypt_password is enabled", nil)
	}
	c, err := crypto.NewCipher(passphrase)
	if err != nil {
		st.Close()
		return nil, err
	}
	enc := storage.NewEncrypted(st, c, models.KeyPassword)
	if err := enc.Verify(); err != nil {
		enc.Close()
		return nil, err
	}
	return enc, nil
}

func (app *App) newDispatcher(logger *slog.Logger) (*dispatch.Dispatcher, error) {
	policy, err := dispatch.ParsePolicy(app.cfg.API.Policy)
	if err != nil {
		return nil, err
	}
	return dispatch.New(dispatch.Options{
		BaseURL:     app.cfg.API.BaseURL,
		Timeout:     app.cfg.API.Timeout,
		Policy:      policy,
		Logger:      logger,
		MaxInFlight: app.cfg.API.MaxInFlight,
	})
}

// loadForm reads the stored form through a synchronizer, the way the TUI
// does at start-up.
func (app *App) loadForm(st storage.Store) (*formstate.StaticForm, *formstate.Synchronizer, error) {
	brand, err := app.cfg.ResolveBrand()
	if err != nil {
		return nil, nil, err
	}

	actions := app.cfg.Actions()
	buttons := make([]string, len(actions))
	for i, a := range actions {
		buttons[i] = string(a)
	}

	form := &formstate.StaticForm{Fields: models.Fields{Hostname: brand.HostnameValue}}
	hl := formstate.NewHighlighter(st, buttons, app.logger)
	sync := formstate.NewSynchronizer(st, form, hl, app.logger)
	sync.Load()
	return form, sync, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperr.ValidationError, apperr.ConfigError:
			return 2
		}
	}
	return 1
}
