package cmd

import (
	"github.com/huangsam/wikistat/core"
	"github.com/spf13/cobra"
)

// reportCmd reads every archive and writes the statistics report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Read wiki dumps and write word, size and year statistics",
	Long: `Stream one or more wiki XML dumps and aggregate:
- The most frequent Cyrillic words in page titles
- The most frequent Cyrillic words in page bodies
- Pages per size bucket (digit count of the revision byte size)
- Pages per year of the revision timestamp

Archives may be plain XML or compressed with bzip2, gzip, zstd or lz4.
The codec is detected from the leading magic bytes, falling back to the
file extension, so a misnamed archive still opens.

Examples:
  # Two archives, default text report in statistics.txt
  wikistat report --inputs ruwiki-1.xml.bz2,ruwiki-2.xml.bz2

  # Legacy HTML layout on stdout with 8 threads
  wikistat report -i ruwiki.xml.bz2 --html -o - -t 8

  # Terminal tables with the top 20 words
  wikistat report -i ruwiki.xml.gz -f table -l 20 -o -`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteReport(rootCtx, cfg, historyManager)
	},
}
