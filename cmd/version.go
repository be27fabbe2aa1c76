package cmd

import (
	"runtime"
	"strings"

	"github.com/huangsam/wikistat/internal/archive"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wikistat.",
	Long: `Display version information including build details.

Shows:
- Release version
- Git commit hash
- Build timestamp
- Go runtime version
- Supported archive codecs`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("wikistat CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		cmd.Printf("  Codecs:  %s\n", strings.Join(archive.Codecs(), ", "))
	},
}
