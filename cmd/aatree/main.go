package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/spf13/cobra"
)

//go:embed demo.yaml
var demoScript []byte

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		printTree bool
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:          "aatree",
		Short:        "Run scripted operations against an AA-tree ordered map",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&printTree, "print", false, "draw the tree after the script has run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every operation to stderr")

	execute := func(cmd *cobra.Command, s *Script) error {
		var logger *log.Logger
		if verbose {
			logger = log.New(cmd.ErrOrStderr(), "aatree: ", log.Lmsgprefix)
		}
		r := NewRunner(cmd.OutOrStdout(), logger)
		if err := r.Run(s); err != nil {
			return err
		}
		if printTree {
			_, err := r.tree.Fprint(cmd.OutOrStdout(), true)
			return err
		}
		return nil
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert three keys, query them and delete one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ParseScript(demoScript)
			if err != nil {
				return err
			}
			return execute(cmd, s)
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run the operations listed in a YAML script",
		Long: `Run loads a YAML script of the form

  ops:
    - {op: insert, key: 1, value: 23}
    - {op: lookup, key: 1}
    - {op: inorder}

and applies it to an empty map of int keys and int values. Supported ops:
insert, delete, lookup, inorder, preorder, postorder, size, height, min,
max, print, validate and clear.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			return execute(cmd, s)
		},
	}

	rootCmd.AddCommand(cmdDemo, cmdRun)
	return rootCmd
}
