package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/parkerdavis/gmaps/internal/cborg"
	"github.com/spf13/cobra"
)

// gatewayClient builds the LLM gateway client from the environment.
func gatewayClient() (*cborg.Client, error) {
	apiKey := os.Getenv(cborg.EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not found: set it in the environment or local/.env", cborg.EnvAPIKey)
	}
	return cborg.NewClient(apiKey, nil), nil
}

var keyinfoCommand = &cobra.Command{
	Use:   "keyinfo",
	Short: "Show spend and budget for the LLM gateway key",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gatewayClient()
		if err != nil {
			return err
		}

		info, err := client.GetKeyInfo(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		name := info.Info.KeyAlias
		if name == "" {
			name = info.Info.KeyName
		}

		fmt.Fprintf(out, "%s %s\n", styleBold.Render("Key"), name)
		fmt.Fprintf(out, "%s %s\n", styleBold.Render("Spend"), styleDollar.Render(fmt.Sprintf("$%.4f", info.Info.Spend)))

		if remaining, ok := info.Remaining(); ok {
			fmt.Fprintf(out, "%s $%.2f of $%.2f remaining\n", styleBold.Render("Budget"), remaining, *info.Info.MaxBudget)
		} else {
			fmt.Fprintf(out, "%s %s\n", styleBold.Render("Budget"), styleFaint.Render("unlimited"))
		}

		if info.Info.Blocked {
			fmt.Fprintf(out, "%s\n", styleFail.Render("Key is blocked"))
		}

		if len(info.Info.Models) > 0 {
			fmt.Fprintf(out, "%s %s\n", styleBold.Render("Models"), styleFaint.Render(strings.Join(info.Info.Models, ", ")))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyinfoCommand)
}
