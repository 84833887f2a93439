package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/yacobolo/atomcss"
	"github.com/yacobolo/atomcss/internal/atomgen"
	"github.com/yacobolo/atomcss/internal/dom"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.html>",
	Short: "Show the rule cache a page would rehydrate",
	Long: `Parse a server-rendered HTML page, rehydrate an engine from its designated
style element and print the recovered rules. Rules that do not look like
generated atoms are counted as skipped.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Print the recovered entries as JSON")
}

// inspectOutput is the --json schema
type inspectOutput struct {
	ElementID string          `json:"element_id"`
	Entries   []atomcss.Entry `json:"entries"`
	Skipped   int             `json:"skipped"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	// #nosec G304 - path is a CLI argument
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}

	engine, err := atomcss.New(append(buildEngineOptions(log), atomcss.WithDocument(doc))...)
	if err != nil {
		return err
	}

	entries := engine.Entries()
	stats := engine.Stats()
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if entries == nil {
			entries = []atomcss.Entry{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(inspectOutput{
			ElementID: engine.ElementID(),
			Entries:   entries,
			Skipped:   stats.Skipped,
		})
	}

	useColors := atomgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
	if len(entries) == 0 {
		fmt.Fprintf(out, "No rules recovered from #%s\n", engine.ElementID())
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("CLASS", "BODY")
		for _, e := range entries {
			t.Row(e.ClassName, e.Body)
		}
		fmt.Fprintln(out, t.String())
	}

	fmt.Fprintf(out, "%s rehydrated, %d skipped\n",
		atomgen.RenderStyle(atomgen.StyleGreen, fmt.Sprintf("%d", stats.Rehydrated), useColors),
		stats.Skipped)

	return nil
}
