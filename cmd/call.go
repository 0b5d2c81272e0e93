package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fgp-services/calendar/internal/calendar"
	"github.com/fgp-services/calendar/internal/service"
)

func newCallCmd() *cobra.Command {
	var (
		account     string
		paramsJSON  string
		listMethods bool
	)

	cmd := &cobra.Command{
		Use:   "call <method>",
		Short: "Invoke a calendar method and print the JSON result",
		Long: `Invoke one of the calendar wire methods directly from the command line
and print the result as JSON. Parameters are passed as a JSON object.

Examples:
  fgp-calendar call calendar.today
  fgp-calendar call calendar.upcoming --params '{"days": 3}'
  fgp-calendar call calendar.free_slots --params '{"duration_minutes": 30, "days": 5}'
  fgp-calendar call --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listMethods {
				return printMethodCatalog(cmd)
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a method name (use --list to see available methods)")
			}

			params := map[string]any{}
			if paramsJSON != "" {
				if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
					return fmt.Errorf("invalid --params (must be a JSON object): %w", err)
				}
			}

			ctx := cmd.Context()
			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create calendar client for account %q: %w", account, err)
			}

			result, err := service.NewService(client).Dispatch(ctx, args[0], params)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account to use (e.g., 'work', 'personal')")
	cmd.Flags().StringVarP(&paramsJSON, "params", "p", "", "Method parameters as a JSON object")
	cmd.Flags().BoolVar(&listMethods, "list", false, "List available methods and exit")

	return cmd
}

func printMethodCatalog(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, m := range service.Methods() {
		fmt.Fprintf(out, "%s\n    %s\n", m.Name, m.Description)
		for _, p := range m.Params {
			line := fmt.Sprintf("    %s (%s)", p.Name, p.Type)
			if p.Required {
				line += " required"
			} else if p.Default != nil {
				line += fmt.Sprintf(" default: %v", p.Default)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
