package cmd

import (
	"fmt"

	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/history"
	"github.com/huangsam/wikistat/internal/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpSetup validates the server settings. Archives are named per tool call,
// so --inputs is optional here.
func mcpSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessServerConfig(cfg, input); err != nil {
		return err
	}
	if err := history.InitHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	historyManager = history.Manager
	return nil
}

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Wikistat MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents analyze archives and browse the run history.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return mcpSetup()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}
