package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/shared/middleware"
	"github.com/emiliopalmerini/typouniverse/internal/web/templates"
)

func (s *Server) handleWizardPage(w http.ResponseWriter, r *http.Request) {
	p := s.printer(r)
	v := s.wizardView(p, domain.NewState())
	_ = templates.WizardPage(s.lang(r), v).Render(r.Context(), w)
}

func (s *Server) handleWizard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p := s.printer(r)

	st := domain.NewState()
	if r.FormValue("action") != "reset" {
		st = s.stateFromForm(r)
	}
	v := s.wizardView(p, st)

	if middleware.IsHTMX(r) {
		_ = templates.Wizard(v).Render(r.Context(), w)
		return
	}
	_ = templates.WizardPage(s.lang(r), v).Render(r.Context(), w)
}

func (s *Server) handleGenerateGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p := s.printer(r)

	st := s.stateFromForm(r)
	if st.Step < domain.StepReady {
		msg := domain.ErrIncompleteSelection.Error()
		if c := r.FormValue("color"); c != "" && st.Step == domain.StepColor {
			msg = p.Sprintf(messages.InvalidColor, c)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = templates.ErrorMessage(msg).Render(ctx, w)
		return
	}

	guide, err := s.generator.Generate(st)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrIncompleteSelection) {
			status = http.StatusBadRequest
		}
		s.log.Warn("generate guide", zap.Error(err))
		w.WriteHeader(status)
		_ = templates.ErrorMessage(err.Error()).Render(ctx, w)
		return
	}
	if err := s.guides.Save(ctx, guide); err != nil {
		s.log.Error("save guide", zap.String("guide_id", guide.ID), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = templates.ErrorMessage(p.Sprintf(messages.GuideUnavailable)).Render(ctx, w)
		return
	}
	s.metrics.RecordGuide(ctx, guide.Platform, guide.MoodGroup)
	s.metrics.RecordContrast(ctx, guide.Accessibility.ContrastRatio, guide.Accessibility.Level)

	s.log.Debug("guide generated",
		zap.String("guide_id", guide.ID),
		zap.String("platform", guide.Platform),
		zap.String("primary", guide.Palette.Primary.Hex),
		zap.Int("cached_guides", s.guides.Len()),
	)

	middleware.TriggerEvent(w, "guide-generated")
	_ = templates.Guide(templates.GuideView{
		Guide:     guide,
		Assistant: p.Sprintf(messages.GuideReady, guide.Platform),
	}).Render(ctx, w)
}
