package templates

//go:generate templ generate

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/typography"
)

// T formats a catalog message in the language of the request being rendered.
func T(ctx context.Context, key string, args ...any) string {
	return messages.FromContext(ctx).Sprintf(key, args...)
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Colors reaching these helpers are normalized #rrggbb values.
func swatchStyle(bg, fg string) templ.SafeCSS {
	return templ.SafeCSS("background:" + bg + ";color:" + fg + ";")
}

func previewStyle(r domain.LabReport) templ.SafeCSS {
	css := swatchStyle(r.Background.Hex(), r.Text.Hex()) + templ.SafeCSS("line-height:"+formatFloat(r.LineHeight, 2)+";")
	if r.Units != nil {
		css += fontSize(formatPx(r.Units.Px))
	}
	return css
}

func fontSize(size string) templ.SafeCSS {
	return templ.SafeCSS("font-size:" + size + ";")
}

// unitRow is one line of the lab's unit table. Sample sizes a specimen the
// way that unit renders, so a rounded rem shows its rounded size.
type unitRow struct {
	Name   string
	Label  string
	Sample templ.SafeCSS
}

func unitRows(u *typography.Units) []unitRow {
	return []unitRow{
		{Name: "px", Label: formatPx(u.Px), Sample: fontSize(formatPx(u.Px))},
		{Name: "pt", Label: u.PtLabel(), Sample: fontSize(u.PtLabel())},
		{Name: "rem", Label: u.RemLabel(), Sample: fontSize(formatPx(u.RemPx()))},
		{Name: "sp", Label: u.SpLabel(), Sample: fontSize(formatPx(u.Sp))},
	}
}

func labURL(guideID string) templ.SafeURL {
	return templ.URL("/lab?guide=" + url.QueryEscape(guideID))
}

func exportURL(guideID, format string) templ.SafeURL {
	return templ.URL("/api/guides/" + url.PathEscape(guideID) + "/export?format=" + format)
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

const resetVals = `{"action":"reset"}`
