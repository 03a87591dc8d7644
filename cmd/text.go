package cmd

import (
	"fmt"

	"text-share/core/config"
	"text-share/feature/text"

	"github.com/spf13/cobra"
)

var serverURL string

// submitCmd sends text to a running server.
var submitCmd = &cobra.Command{
	Use:   "submit [text]",
	Short: "Replace the shared text on a running server",
	Long: `Sends the given text to POST /submit-text. The server URL defaults to
http://localhost:<PORT>; the configured API key is sent when set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newTextClient()
		if err != nil {
			return err
		}
		if err := c.Submit(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Text submitted.")
		return nil
	},
}

// readCmd prints the shared text of a running server.
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the shared text of a running server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newTextClient()
		if err != nil {
			return err
		}
		current, err := c.Fetch()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), current)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{submitCmd, readCmd} {
		c.Flags().StringVar(&serverURL, "url", "", "Server base URL (default http://localhost:<PORT>)")
		RootCmd.AddCommand(c)
	}
}

func newTextClient() (*text.Client, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	url := serverURL
	if url == "" {
		url = cfg.Server.BaseURL()
	}
	return text.NewClient(url, cfg.Server.ApiKey), nil
}
