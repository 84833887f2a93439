package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/atomcss"
)

var compileCmd = &cobra.Command{
	Use:   "compile [declarations...]",
	Short: "Compile declarations and print their class names",
	Long: `Run each argument through one engine as a single CSS call and print
the resulting class names, one line per argument. Without arguments each
line of stdin is one call. With --flush the accumulated stylesheet is
printed afterwards.`,
	Example: `  atomcss compile "color: red; margin: 0" "color: red"
  atomcss compile --flush --style-element "display: flex"
  echo "color: red" | atomcss compile`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.Bool("flush", false, "Print the flushed stylesheet after the class names")
	f.Bool("style-element", false, "Wrap the flushed stylesheet in its style element")
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	engine, err := atomcss.New(buildEngineOptions(log)...)
	if err != nil {
		return err
	}

	calls := args
	if len(calls) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			calls = append(calls, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, rules := range calls {
		classes, err := engine.CSS(rules)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, classes)
	}

	flush, _ := cmd.Flags().GetBool("flush")
	wrap, _ := cmd.Flags().GetBool("style-element")
	switch {
	case wrap:
		fmt.Fprintln(out, engine.StyleElement())
	case flush:
		fmt.Fprintln(out, engine.Flush())
	}

	return nil
}
