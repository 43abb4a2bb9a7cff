package main

import (
	"fmt"
	"io"

	"github.com/growler/go-wiki"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var treeFrom string

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the block tree of a document as YAML",
	Long: `Build the block tree of a markdown document or a JSON event stream
and print it as YAML. The input kind is taken from the file extension
unless --from is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeFrom, "from", "", "Input kind: markdown or json")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	from := treeFrom
	if from == "" {
		from = "markdown"
		if isJSON(name) {
			from = "json"
		}
	}

	g := wiki.NewGenerator()
	chain, err := cfg.Conf().Chain(g)
	if err != nil {
		return err
	}
	switch from {
	case "json":
		err = wiki.ReadEvents(in, chain.Entry())
	case "markdown":
		p, perr := cfg.Parser()
		if perr != nil {
			return perr
		}
		var src []byte
		if src, err = io.ReadAll(in); err == nil {
			err = p.Parse(src, chain.Entry())
		}
	default:
		return fmt.Errorf("unknown input kind %q", from)
	}
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(DumpBlock(g.Document())); err != nil {
		return err
	}
	return enc.Close()
}
