package cmd

import (
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	var sseAddr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve color tools over the Model Context Protocol",
		Long: `Starts an MCP server exposing color conversion, contrast, harmony,
naming and export tools plus read-only access to the history and palettes.

By default the server speaks MCP over stdin/stdout, which is what AI
assistants launch. With --sse it listens for HTTP server-sent events instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return application.RunMCP(cmd.Context(), sseAddr, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&sseAddr, "sse", "", "Serve over SSE on this address, for example localhost:8090")
	return cmd
}
