package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Generate a design guide",
	Long: `Generate a design guide for a platform and primary color.

Examples:
  typouniverse guide --platform iOS --color "#3366cc"
  typouniverse guide --platform Web --color ff0000 --soft 20 --static 80 --keyword Playful
  typouniverse guide --platform Android --color 1e3a5f --json`,
	RunE: runGuide,
}

var (
	guidePlatform string
	guideColor    string
	guideService  string
	guideKeyword  string
	guideSoft     int
	guideStatic   int
	guideKB       string
	guideJSON     bool
)

func init() {
	guideCmd.Flags().StringVar(&guidePlatform, "platform", "", "Target platform (iOS, Android, Web, ...)")
	guideCmd.Flags().StringVar(&guideColor, "color", "", "Primary color as #RRGGBB")
	guideCmd.Flags().StringVar(&guideService, "service", "", "Project purpose")
	guideCmd.Flags().StringVar(&guideKeyword, "keyword", "", "Mood keyword from the selected group")
	guideCmd.Flags().IntVar(&guideSoft, "soft", 50, "Soft (0) to hard (100)")
	guideCmd.Flags().IntVar(&guideStatic, "static", 50, "Static (0) to dynamic (100)")
	guideCmd.Flags().StringVar(&guideKB, "kb", "", "Knowledge base file (.json, .yaml)")
	guideCmd.Flags().BoolVar(&guideJSON, "json", false, "Print the guide as JSON")
	_ = guideCmd.MarkFlagRequired("platform")
	_ = guideCmd.MarkFlagRequired("color")
}

func runGuide(cmd *cobra.Command, args []string) error {
	kb, err := knowledge.LoadOrDefault(guideKB)
	if err != nil {
		return err
	}
	color, err := colormath.NormalizeHex(guideColor)
	if err != nil {
		return err
	}

	st := domain.State{
		Service:      guideService,
		Platform:     guidePlatform,
		Mood:         domain.Mood{Soft: guideSoft, Static: guideStatic}.Clamp(),
		PrimaryColor: color,
		Step:         domain.StepReady,
	}
	if guideKeyword != "" {
		group, err := kb.Group(st.MoodGroup())
		if err != nil {
			return err
		}
		if !group.HasKeyword(guideKeyword) {
			return fmt.Errorf("%w: keyword %q is not in %s (%s)", domain.ErrInvalidSelection, guideKeyword, st.MoodGroup(), group.Description)
		}
		st.Keyword = guideKeyword
	}

	g, err := domain.NewGenerator(kb).Generate(st)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if guideJSON {
		return writeJSON(out, g)
	}
	printGuide(cmd, g)
	return nil
}

func printGuide(cmd *cobra.Command, g *domain.Guide) {
	out := cmd.OutOrStdout()
	s := theme.Default()

	fmt.Fprintln(out, s.Title.Render(fmt.Sprintf("Design guide for %s", g.Platform)))
	if g.Service != "" {
		field(out, "Service", g.Service)
	}
	if g.Keyword != "" {
		field(out, "Keyword", g.Keyword)
	}
	field(out, "Mood group", g.MoodGroup)
	fmt.Fprintln(out)

	fmt.Fprintln(out, s.Subtitle.Render("Palette"))
	for _, sw := range g.Palette.Swatches() {
		fmt.Fprintf(out, "%s %s\n", theme.Swatch(sw.Hex, sw.LabelColor, sw.Hex), sw.Name)
	}
	fmt.Fprintln(out)

	t := g.Typography
	fmt.Fprintln(out, s.Subtitle.Render("Typography"))
	field(out, "Body", t.BodySize)
	field(out, "Headline", t.HeadlineSize)
	field(out, "Minimum", t.MinimumSize)
	field(out, "Unit", t.Unit)
	if t.Source != "" {
		field(out, "Source", s.Muted.Render(t.Source))
	}
	fmt.Fprintln(out)

	a := g.Accessibility
	fmt.Fprintln(out, s.Subtitle.Render("Accessibility"))
	field(out, "Text color", a.TextColorOnPrimary)
	field(out, "Contrast", a.ContrastLabel)
	field(out, "Level", s.Level(a.Level).Render(string(a.Level)))
	field(out, "AA", passFail(a.PassesAA))
}
