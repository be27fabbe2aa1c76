// main holds the entry logic for the wikistat CLI.
package main

import (
	"github.com/huangsam/wikistat/cmd"
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/internal/history"
)

func main() {
	defer history.CloseHistory()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Failed to stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		history.CloseHistory()
		_ = cmd.StopProfiling()
		contract.LogFatal("Command failed", err)
	}
}
