package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/growler/go-wiki"
	"github.com/spf13/cobra"
)

var outputFormat string

var eventsCmd = &cobra.Command{
	Use:   "events [file]",
	Short: "Parse markdown into a wiki event stream",
	Long: `Parse a markdown document and write its events, run through the
configured listener chain. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvents,
}

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Run a JSON event stream through the listener chain",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplay,
}

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the listener chain stages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range wiki.StageNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{eventsCmd, replayCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: json or text (default from config)")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(stagesCmd)
}

// sink is the end of the chain writing events to the output.
type sink struct {
	wiki.Listener
	close func() error
}

func newSink(w io.Writer, format string) (*sink, error) {
	switch format {
	case FormatJSON:
		j := wiki.NewJSONWriter(w)
		return &sink{j, j.Close}, nil
	case FormatText:
		bw := bufio.NewWriter(w)
		var err error
		f := wiki.EventFunc(func(e wiki.Event) {
			if err == nil {
				_, err = fmt.Fprintln(bw, e.String())
			}
		})
		return &sink{f, func() error {
			if err != nil {
				return err
			}
			return bw.Flush()
		}}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func selectedFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	return cfg.Output.Format
}

func runEvents(cmd *cobra.Command, args []string) error {
	p, err := cfg.Parser()
	if err != nil {
		return err
	}
	out, err := newSink(cmd.OutOrStdout(), selectedFormat())
	if err != nil {
		return err
	}
	chain, err := cfg.Conf().Chain(out)
	if err != nil {
		return err
	}
	if len(args) > 0 && args[0] != "-" {
		err = p.ParseFile(args[0], chain.Entry())
	} else {
		var src []byte
		if src, err = io.ReadAll(stdin); err == nil {
			err = p.Parse(src, chain.Entry())
		}
	}
	if err != nil {
		return err
	}
	return out.close()
}

func runReplay(cmd *cobra.Command, args []string) error {
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := newSink(cmd.OutOrStdout(), selectedFormat())
	if err != nil {
		return err
	}
	if err := wiki.Pipe(in, cfg.Conf(), out); err != nil {
		if name != "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return err
	}
	return out.close()
}
