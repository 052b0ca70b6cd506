// internal/cli/dispatch.go

package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperr "shawl/internal/error"
	"shawl/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func fieldFlag(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func newDispatchCmd(app *App) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "dispatch <action>",
		Short: "Press an action button without the UI",
		Long: strings.TrimSpace(`
Loads the stored form, applies field flags, saves the form, marks the
button as the last one pressed and sends the request. Without --wait the
command exits once the request has finished, without reporting the result.`),
		Args:      cobra.ExactArgs(1),
		ValidArgs: actionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := models.ParseAction(args[0])
			if err != nil {
				return apperr.New(apperr.ValidationError, "unknown action", err)
			}
			if !slices.Contains(app.cfg.Actions(), action) {
				return apperr.New(apperr.ValidationError, fmt.Sprintf("action %q is not enabled in ui.buttons", action), nil)
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
			for _, key := range models.FieldKeys {
				if f := cmd.Flags().Lookup(fieldFlag(key)); f != nil && f.Changed {
					form.Fields.Set(key, f.Value.String())
				}
			}
			sync.Save()
			sync.Highlighter().Highlight(string(action))

			d, err := app.newDispatcher(app.logger)
			if err != nil {
				return err
			}

			task := d.Dispatch(cmd.Context(), action, form.Fields)
			if !wait {
				// Fire-and-forget, ale proces żyje do końca żądania
				d.Wait()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", task.ID, action)
				return nil
			}

			r, err := task.Wait(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd, r.Action, r.StatusCode, r.Duration, r.Body, r.Err)
			return r.Err
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the response and print it")
	for _, key := range models.FieldKeys {
		cmd.Flags().String(fieldFlag(key), "", "Override the stored "+key)
	}
	return cmd
}

func printResult(cmd *cobra.Command, action models.Action, status int, d time.Duration, body string, err error) {
	out := cmd.OutOrStdout()
	if err != nil {
		red := color.New(color.FgRed)
		red.Fprint(out, "✗ ")
		fmt.Fprintf(out, "%s: %v\n", action, err)
		return
	}
	green := color.New(color.FgGreen)
	green.Fprint(out, "✓ ")
	fmt.Fprintf(out, "%s: %d in %s\n", action, status, d.Round(time.Millisecond))
	if body = strings.TrimSpace(body); body != "" {
		fmt.Fprintln(out, body)
	}
}

func actionNames() []string {
	names := make([]string, 0, len(models.AllActions()))
	for _, a := range models.AllActions() {
		names = append(names, string(a))
	}
	return names
}
