package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

func field(w io.Writer, name string, value any) {
	fmt.Fprintf(w, "%-14s %v\n", name+":", value)
}

func passFail(ok bool) string {
	s := theme.Default()
	if ok {
		return s.Success.Render("pass")
	}
	return s.Error.Render("fail")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
