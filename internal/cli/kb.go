package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Validate and summarize a knowledge base",
	Long: `Validate a knowledge base and list its platforms and mood groups.
Without --kb the built-in knowledge base is used.

Examples:
  typouniverse kb
  typouniverse kb --kb ./guides.yaml
  typouniverse kb --dump > guides.yaml`,
	RunE: runKB,
}

var (
	kbPath string
	kbDump bool
)

func init() {
	kbCmd.Flags().StringVar(&kbPath, "kb", "", "Knowledge base file (.json, .yaml)")
	kbCmd.Flags().BoolVar(&kbDump, "dump", false, "Print the knowledge base as YAML")
}

func runKB(cmd *cobra.Command, args []string) error {
	kb, err := knowledge.LoadOrDefault(kbPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if kbDump {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(kb); err != nil {
			return err
		}
		return enc.Close()
	}

	s := theme.Default()
	source := kbPath
	if source == "" {
		source = "built-in"
	}
	fmt.Fprintln(out, s.Title.Render("Knowledge base: "+source))

	fmt.Fprintln(out, s.Subtitle.Render("Platforms"))
	for _, key := range kb.PlatformKeys() {
		g := kb.Guidelines[key]
		fmt.Fprintf(out, "  %-10s body %-6s headline %-6s min %s\n", key, g.DefaultSize, g.Headline(), g.MinimumSize)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, s.Subtitle.Render("Mood groups"))
	for _, id := range kb.GroupIDs() {
		g := kb.IRIColors[id]
		fmt.Fprintf(out, "  %s  %s\n", id, g.Description)
		fmt.Fprintf(out, "    keywords: %s\n", strings.Join(g.Keywords, ", "))
		fmt.Fprintf(out, "    colors:   %s\n", strings.Join(g.KeyColors, " "))
	}
	fmt.Fprintln(out, s.Success.Render("valid"))
	return nil
}
