package web

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
)

func (s *Server) handleAPIExportGuide(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format))
		return
	}

	g, ok := s.lookupGuide(w, r)
	if !ok {
		return
	}
	filename := "typouniverse-guide-" + g.ID

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename+".csv")

		writer := csv.NewWriter(w)
		defer writer.Flush()

		for _, row := range guideRecords(g) {
			_ = writer.Write(row)
		}

	default: // json
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename+".json")

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(g)
	}
}

// guideRecords flattens a guide into section,name,value rows.
func guideRecords(g *domain.Guide) [][]string {
	rows := [][]string{
		{"section", "name", "value"},
		{"guide", "id", g.ID},
		{"guide", "created_at", g.CreatedAt.Format(time.RFC3339)},
		{"guide", "service", g.Service},
		{"guide", "platform", g.Platform},
		{"guide", "keyword", g.Keyword},
		{"guide", "mood_group", g.MoodGroup},
	}
	for _, sw := range g.Palette.Swatches() {
		rows = append(rows, []string{"palette", sw.Name, sw.Hex})
	}

	t := g.Typography
	rows = append(rows,
		[]string{"typography", "body_size", t.BodySize},
		[]string{"typography", "headline_size", t.HeadlineSize},
		[]string{"typography", "minimum_size", t.MinimumSize},
		[]string{"typography", "unit", t.Unit},
		[]string{"typography", "source", t.Source},
	)

	a := g.Accessibility
	rows = append(rows,
		[]string{"accessibility", "text_color_on_primary", a.TextColorOnPrimary},
		[]string{"accessibility", "contrast_ratio", strconv.FormatFloat(a.ContrastRatio, 'f', 4, 64)},
		[]string{"accessibility", "contrast_label", a.ContrastLabel},
		[]string{"accessibility", "level", string(a.Level)},
		[]string{"accessibility", "passes_aa", strconv.FormatBool(a.PassesAA)},
	)
	return rows
}
