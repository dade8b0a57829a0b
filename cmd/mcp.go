package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/chunlian/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio exposing the generate_couplet and draw_fortune tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		logrus.WithField("model", cfg.Model).Info("chunlian MCP server started on stdio")
		return mcpserver.NewServer(gen).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
