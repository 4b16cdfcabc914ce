package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
	"github.com/emiliopalmerini/typouniverse/internal/typography"
	"github.com/emiliopalmerini/typouniverse/internal/util"
)

type contrastResponse struct {
	Background string          `json:"bg"`
	Foreground string          `json:"fg"`
	Ratio      float64         `json:"ratio"`
	Label      string          `json:"label"`
	AA         bool            `json:"aa"`
	AAA        bool            `json:"aaa"`
	Large      bool            `json:"aa_large"`
	Level      colormath.Level `json:"level"`
	BestText   string          `json:"best_text"`
}

type simulateResponse struct {
	Color     string `json:"color"`
	Preset    string `json:"preset"`
	Simulated string `json:"simulated"`
}

type unitsResponse struct {
	Px       float64 `json:"px"`
	Base     float64 `json:"base"`
	Pt       float64 `json:"pt"`
	Rem      float64 `json:"rem"`
	Sp       float64 `json:"sp"`
	PtLabel  string  `json:"pt_label"`
	RemLabel string  `json:"rem_label"`
	SpLabel  string  `json:"sp_label"`
}

func (s *Server) handleAPIContrast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bg, err := colormath.ParseHex(q.Get("bg"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bg: "+err.Error())
		return
	}
	fg, err := colormath.ParseHex(q.Get("fg"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "fg: "+err.Error())
		return
	}

	ratio := colormath.ContrastRatio(bg, fg)
	level := colormath.Classify(ratio)
	s.metrics.RecordContrast(r.Context(), ratio, level)

	writeJSON(w, http.StatusOK, contrastResponse{
		Background: bg.Hex(),
		Foreground: fg.Hex(),
		Ratio:      ratio,
		Label:      colormath.FormatRatio(ratio),
		AA:         colormath.PassesAA(ratio),
		AAA:        colormath.PassesAAA(ratio),
		Large:      colormath.PassesLarge(ratio),
		Level:      level,
		BestText:   colormath.BestTextColor(bg).Hex(),
	})
}

func (s *Server) handleAPISimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := colormath.ParseHex(q.Get("color"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "color: "+err.Error())
		return
	}
	preset := q.Get("preset")
	if preset == "" {
		preset = colormath.PresetRedGreen
	}
	preset, err = colormath.CanonicalPreset(preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sim, err := colormath.SimulatePreset(c, preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.RecordSimulation(r.Context(), preset)

	writeJSON(w, http.StatusOK, simulateResponse{
		Color:     c.Hex(),
		Preset:    preset,
		Simulated: sim.Hex(),
	})
}

func (s *Server) handleAPIPalette(w http.ResponseWriter, r *http.Request) {
	c, err := colormath.ParseHex(r.URL.Query().Get("color"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "color: "+err.Error())
		return
	}
	palette, err := domain.BuildPalette(c)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, palette)
}

func (s *Server) handleAPIUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	px := util.ToFloat64(q.Get("px"), 0)
	base := util.ToFloat64(q.Get("base"), typography.DefaultBase)

	u, err := typography.Convert(px, base)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, unitsResponse{
		Px:       u.Px,
		Base:     u.Base,
		Pt:       u.Pt,
		Rem:      u.Rem,
		Sp:       u.Sp,
		PtLabel:  u.PtLabel(),
		RemLabel: u.RemLabel(),
		SpLabel:  u.SpLabel(),
	})
}

func (s *Server) handleAPIKnowledge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.kb)
}

func (s *Server) handleAPIGuide(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGuide(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// lookupGuide loads the {id} guide, writing the error response itself.
func (s *Server) lookupGuide(w http.ResponseWriter, r *http.Request) (*domain.Guide, bool) {
	id := chi.URLParam(r, "id")
	g, err := s.guides.Get(r.Context(), id)
	if errors.Is(err, ports.ErrGuideNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		s.log.Error("load guide", zap.String("guide_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return g, true
}
