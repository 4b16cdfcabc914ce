package web

import (
	"encoding/json"
	"net/http"

	"golang.org/x/text/message"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/util"
	"github.com/emiliopalmerini/typouniverse/internal/web/templates"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) printer(r *http.Request) *message.Printer {
	return messages.FromContext(r.Context())
}

func (s *Server) lang(r *http.Request) string {
	return s.msgs.Match(r.Header.Get("Accept-Language")).String()
}

// stateFromForm rebuilds the wizard state from submitted fields. A keyword
// that does not belong to the current mood group is dropped with its color.
func (s *Server) stateFromForm(r *http.Request) domain.State {
	mood := domain.Mood{
		Soft:   util.ToInt(r.FormValue("soft"), 50),
		Static: util.ToInt(r.FormValue("static"), 50),
	}.Clamp()

	keyword := r.FormValue("keyword")
	color := r.FormValue("color")
	if g, err := s.kb.Group(mood.Group()); err != nil || !g.HasKeyword(keyword) {
		keyword, color = "", ""
	}

	return domain.Restore(r.FormValue("service"), r.FormValue("platform"), mood, keyword, color)
}

func (s *Server) wizardView(p *message.Printer, st domain.State) templates.WizardView {
	v := templates.WizardView{
		State:     st,
		Services:  knowledge.Services,
		Platforms: knowledge.Platforms,
		Assistant: s.assistantMessage(p, st),
	}
	if st.Step >= domain.StepKeyword {
		if g, err := s.kb.Group(st.MoodGroup()); err == nil {
			gv := &templates.GroupView{
				ID:          st.MoodGroup(),
				Description: g.Description,
				Keywords:    g.Keywords,
			}
			for _, hex := range g.KeyColors {
				c, err := colormath.ParseHex(hex)
				if err != nil {
					continue
				}
				gv.Colors = append(gv.Colors, templates.ColorChip{
					Hex:        c.Hex(),
					LabelColor: colormath.BestTextColor(c).Hex(),
				})
			}
			v.Group = gv
		}
	}
	return v
}

func (s *Server) assistantMessage(p *message.Printer, st domain.State) string {
	switch st.Step {
	case domain.StepMood:
		g := s.kb.Platform(st.Platform)
		return p.Sprintf(messages.PlatformChosen, st.Platform, g.Description, g.DefaultSize)
	case domain.StepKeyword:
		g, err := s.kb.Group(st.MoodGroup())
		if err != nil {
			return p.Sprintf(messages.InitFailed)
		}
		return p.Sprintf(messages.MoodKeywords, g.Description)
	case domain.StepColor:
		return p.Sprintf(messages.KeywordColors, st.Keyword)
	case domain.StepReady:
		return p.Sprintf(messages.ColorChosen)
	default:
		return p.Sprintf(messages.Welcome)
	}
}

func labStatusText(p *message.Printer, status domain.LabStatus) string {
	switch status {
	case domain.StatusExcellent:
		return p.Sprintf(messages.LabExcellent)
	case domain.StatusGood:
		return p.Sprintf(messages.LabGood)
	default:
		return p.Sprintf(messages.LabNeedsWork)
	}
}

func simulationNote(p *message.Printer, sim domain.SimulationResult) string {
	if sim.Warning {
		return p.Sprintf(messages.SimulationWarn, sim.Preset)
	}
	return p.Sprintf(messages.SimulationOK, sim.Preset)
}
