package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("wikievents")

var (
	configFile string
	verbosity  int
	logFile    string
	cfg        *Config

	stdin io.Reader = os.Stdin
)

var rootCmd = &cobra.Command{
	Use:   "wikievents",
	Short: "Convert documents to wiki event streams",
	Long: `wikievents parses markdown into a stream of wiki events, runs event
streams through a chain of state tracking listeners and rebuilds block trees
from them.

Examples:
  wikievents events README.md            # markdown to JSON events
  wikievents events -f text README.md    # one event per line
  wikievents tree README.md              # block tree as YAML
  wikievents replay events.json          # JSON events through the chain
  wikievents stages                      # list chain stages`,
	Version:           Version,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var path *string
		if logFile != "" {
			path = &logFile
		}
		commonlog.Configure(verbosity, path)
		c, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = c
		log.Debug("configuration loaded", "listeners", strings.Join(cfg.Chain.Listeners, ","))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.config/wikievents/wikievents.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a file instead of stderr")
}

// openInput opens the named file, or stdin for "" and "-".
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), "", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func isJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}
