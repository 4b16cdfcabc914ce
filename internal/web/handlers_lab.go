package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
	"github.com/emiliopalmerini/typouniverse/internal/shared/middleware"
	"github.com/emiliopalmerini/typouniverse/internal/util"
	"github.com/emiliopalmerini/typouniverse/internal/web/templates"
)

func (s *Server) handleLabPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p := s.printer(r)

	in := domain.DefaultLabInput()
	guideID := r.URL.Query().Get("guide")
	var notice string
	if guideID != "" {
		g, err := s.guides.Get(ctx, guideID)
		switch {
		case err == nil:
			in = domain.LabInputFromGuide(g)
		case errors.Is(err, ports.ErrGuideNotFound):
			notice = p.Sprintf(messages.GuideUnavailable)
			guideID = ""
		default:
			s.log.Error("load guide", zap.String("guide_id", guideID), zap.Error(err))
			guideID = ""
		}
	}

	report, err := domain.BuildLabReport(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	v := s.labView(p, report)
	v.GuideID = guideID
	if notice != "" {
		v.StatusText = notice + " " + v.StatusText
	}
	_ = templates.LabPage(s.lang(r), v).Render(ctx, w)
}

func (s *Server) handleLab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p := s.printer(r)

	def := domain.DefaultLabInput()
	in := domain.LabInput{
		Background: r.FormValue("bg"),
		Text:       r.FormValue("fg"),
		LineHeight: util.ToFloat64(r.FormValue("line_height"), def.LineHeight),
		FontSize:   util.ToFloat64(r.FormValue("font_size"), 0),
		BaseSize:   util.ToFloat64(r.FormValue("base"), def.BaseSize),
		Preset:     r.FormValue("preset"),
	}

	report, err := domain.BuildLabReport(in)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = templates.LabReport(templates.LabView{Error: err.Error()}).Render(ctx, w)
		return
	}
	s.metrics.RecordContrast(ctx, report.Contrast.Ratio, report.Contrast.Level)
	s.metrics.RecordSimulation(ctx, report.Simulation.Preset)

	v := s.labView(p, report)
	v.GuideID = r.FormValue("guide")
	if middleware.IsHTMX(r) {
		_ = templates.LabReport(v).Render(ctx, w)
		return
	}
	_ = templates.LabPage(s.lang(r), v).Render(ctx, w)
}

func (s *Server) labView(p *message.Printer, report domain.LabReport) templates.LabView {
	return templates.LabView{
		Report:     report,
		Presets:    colormath.Presets(),
		StatusText: labStatusText(p, report.Contrast.Status),
		SimNote:    simulationNote(p, report.Simulation),
	}
}
