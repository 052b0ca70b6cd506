// internal/cli/fields.go

package cli

import (
	"fmt"
	"strings"

	apperr "shawl/internal/error"
	"shawl/internal/models"
	"shawl/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const maskedPassword = "********"

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set key=value...",
		Short: "Store form field values",
		Long:  "Keys: " + strings.Join(models.FieldKeys, ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := make(map[string]string, len(args))
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return apperr.New(apperr.ValidationError, fmt.Sprintf("expected key=value, got %q", arg), nil)
				}
				if !models.IsFieldKey(key) {
					return apperr.New(apperr.ValidationError, fmt.Sprintf("unknown field %q", key), nil)
				}
				updates[key] = value
			}

			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			form, sync, err := app.loadForm(st)
			if err != nil {
				return err
			}
			for key, value := range updates {
				form.Fields.Set(key, value)
			}
			sync.Save()

			app.logger.Debug("stored fields", "count", len(updates))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			form, sync, err := app.loadForm(st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan)
			for _, key := range models.FieldKeys {
				value := form.Fields.Get(key)
				if key == models.KeyPassword && value != "" && !reveal {
					value = maskedPassword
				}
				cyan.Fprintf(out, "%-12s", key)
				fmt.Fprintln(out, value)
			}
			cyan.Fprintf(out, "%-12s", "last button")
			fmt.Fprintln(out, sync.Highlighter().Highlighted())
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the password in clear text")
	return cmd
}

func newActionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions with their endpoints and request fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := app.cfg.ResolveBrand()
			if err != nil {
				return err
			}

			enabled := make(map[models.Action]bool)
			for _, a := range app.cfg.Actions() {
				enabled[a] = true
			}

			rows := make([][]string, 0, len(models.AllActions()))
			for _, a := range models.AllActions() {
				mark := ""
				if enabled[a] {
					mark = "yes"
				}
				rows = append(rows, []string{
					string(a),
					brand.ButtonText(a),
					"POST " + a.Path(),
					strings.Join(a.BodyFields(), ", "),
					mark,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.CreateLipglossTable(
				[]string{"Action", "Button", "Endpoint", "Fields", "Enabled"}, rows))
			return nil
		},
	}
}
