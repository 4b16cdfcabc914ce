package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emiliopalmerini/typouniverse/internal/adapters/memory"
	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
)

type recordingMetrics struct {
	mu          sync.Mutex
	guides      int
	contrasts   []colormath.Level
	simulations []string
}

var _ ports.MetricsExporter = (*recordingMetrics)(nil)

func (m *recordingMetrics) RecordGuide(context.Context, string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guides++
}

func (m *recordingMetrics) RecordContrast(_ context.Context, _ float64, level colormath.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contrasts = append(m.contrasts, level)
}

func (m *recordingMetrics) RecordSimulation(_ context.Context, preset string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulations = append(m.simulations, preset)
}

func (m *recordingMetrics) Close(context.Context) error { return nil }

type testEnv struct {
	handler http.Handler
	guides  *memory.GuideStore
	metrics *recordingMetrics
	logs    *observer.ObservedLogs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kb, err := knowledge.Default()
	require.NoError(t, err)
	msgs, err := messages.New("en")
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	env := &testEnv{
		guides:  memory.NewGuideStore(8),
		metrics: &recordingMetrics{},
		logs:    logs,
	}
	srv := NewServer(":0", 0, zap.New(core), kb, env.guides, env.metrics, msgs)
	env.handler = srv.Handler()
	return env
}

func (e *testEnv) get(t *testing.T, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(t *testing.T, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func readyForm() url.Values {
	return url.Values{
		"service":  {"학습"},
		"platform": {"Web"},
		"soft":     {"80"},
		"static":   {"20"},
		"keyword":  {"Elegant"},
		"color":    {"#1E3A5F"},
	}
}

var guideIDPattern = regexp.MustCompile(`data-guide-id="([^"]+)"`)

func generateGuide(t *testing.T, e *testEnv) string {
	t.Helper()
	rec := e.post(t, "/guide", readyForm(), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "guide-generated", rec.Header().Get("HX-Trigger"))
	m := guideIDPattern.FindStringSubmatch(rec.Body.String())
	require.Len(t, m, 2, "guide id not rendered")
	return m[1]
}

func TestHealthAndStatic(t *testing.T) {
	e := newTestEnv(t)

	rec := e.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = e.get(t, "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}

func TestWizardPage(t *testing.T) {
	e := newTestEnv(t)

	rec := e.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `id="wizard"`)
	assert.Contains(t, body, `data-step="basics"`)
	assert.Contains(t, body, "design assistant")

	rec = e.get(t, "/", "Accept-Language", "ko-KR,ko;q=0.9")
	assert.Contains(t, rec.Body.String(), "안녕하세요")
	assert.Contains(t, rec.Body.String(), `lang="ko"`)
	assert.Contains(t, rec.Body.String(), "가이드 마법사")
	assert.NotContains(t, rec.Body.String(), "Guide wizard")
}

func TestLab_Korean(t *testing.T) {
	e := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/lab", strings.NewReader(url.Values{"bg": {"nope"}, "font_size": {"0"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("Accept-Language", "ko")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "유효하지 않은 색상은 검정색으로 표시됩니다.")
	assert.Contains(t, body, "양수인 글자 크기와 기준 크기를 입력하세요.")
	assert.Contains(t, body, "색각 이상 시뮬레이션")
	assert.NotContains(t, body, "Invalid colors are shown as black.")
}

func TestWizard_Steps(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		wantStep string
		want     string
	}{
		{
			name:     "basics done",
			form:     url.Values{"service": {"학습"}, "platform": {"iOS"}},
			wantStep: "mood",
			want:     "You picked iOS.",
		},
		{
			name:     "expressive mood",
			form:     url.Values{"service": {"학습"}, "platform": {"iOS"}, "soft": {"80"}, "static": {"20"}},
			wantStep: "keyword",
			want:     `value="Elegant"`,
		},
		{
			name:     "ready",
			form:     readyForm(),
			wantStep: "ready",
			want:     "Generate guide",
		},
		{
			name: "keyword from another group is dropped",
			form: url.Values{
				"service": {"학습"}, "platform": {"Web"}, "soft": {"10"}, "static": {"10"},
				"keyword": {"Elegant"}, "color": {"#1E3A5F"},
			},
			wantStep: "keyword",
			want:     `value="Calm"`,
		},
		{
			name:     "reset",
			form:     url.Values{"action": {"reset"}, "service": {"학습"}, "platform": {"iOS"}},
			wantStep: "basics",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			rec := e.post(t, "/wizard", tt.form, true)
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.NotContains(t, body, "<!doctype html>", "HTMX requests get the fragment")
			assert.Contains(t, body, `data-step="`+tt.wantStep+`"`)
			if tt.want != "" {
				assert.Contains(t, body, tt.want)
			}
		})
	}
}

func TestWizard_ReadyMarksSelection(t *testing.T) {
	e := newTestEnv(t)
	body := e.post(t, "/wizard", readyForm(), true).Body.String()
	assert.Contains(t, body, `value="#1e3a5f" checked`)
	assert.Contains(t, body, `value="Elegant" checked`)
}

func TestWizard_FullPageWithoutHTMX(t *testing.T) {
	e := newTestEnv(t)
	rec := e.post(t, "/wizard", readyForm(), false)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!doctype html>"))
}

func TestGenerateGuide(t *testing.T) {
	e := newTestEnv(t)
	rec := e.post(t, "/guide", readyForm(), true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "#1e3a5f")
	assert.Contains(t, body, "Your design guide for Web is ready.")
	assert.Contains(t, body, "11.50:1")
	assert.Equal(t, 1, e.guides.Len())
	assert.Equal(t, 1, e.metrics.guides)
	assert.Equal(t, []colormath.Level{colormath.LevelAAA}, e.metrics.contrasts)

	entries := e.logs.FilterMessage("guide generated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Web", fields["platform"])
	assert.Equal(t, int64(1), fields["cached_guides"])
}

func TestGenerateGuide_Incomplete(t *testing.T) {
	e := newTestEnv(t)

	form := readyForm()
	form.Del("color")
	rec := e.post(t, "/guide", form, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form.Set("color", "#12345")
	rec = e.post(t, "/guide", form, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a valid #RRGGBB color")
	assert.Equal(t, 0, e.guides.Len())
}

func TestGuideAPI(t *testing.T) {
	e := newTestEnv(t)
	id := generateGuide(t, e)

	rec := e.get(t, "/api/guides/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode(t, rec)
	assert.Equal(t, id, g["id"])
	assert.Equal(t, "Web", g["platform"])
	assert.Equal(t, "group3", g["mood_group"])

	rec = e.get(t, "/api/guides/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ports.ErrGuideNotFound.Error(), decode(t, rec)["error"])
}

func TestGuideExport(t *testing.T) {
	e := newTestEnv(t)
	id := generateGuide(t, e)

	rec := e.get(t, "/api/guides/"+id+"/export?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "section,name,value\n"))
	assert.Contains(t, rec.Body.String(), "palette,Primary,#1e3a5f\n")
	assert.Contains(t, rec.Body.String(), "accessibility,level,AAA\n")

	rec = e.get(t, "/api/guides/"+id+"/export")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".json")
	assert.Equal(t, id, decode(t, rec)["id"])

	rec = e.get(t, "/api/guides/"+id+"/export?format=xml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.get(t, "/api/guides/nope/export?format=csv")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLabPage(t *testing.T) {
	e := newTestEnv(t)

	rec := e.get(t, "/lab")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "12.63 : 1")
	assert.Contains(t, rec.Body.String(), `name="bg" value="#ffffff"`)

	id := generateGuide(t, e)
	rec = e.get(t, "/lab?guide="+id)
	assert.Contains(t, rec.Body.String(), `name="bg" value="#1e3a5f"`)
	assert.Contains(t, rec.Body.String(), `name="guide" value="`+id+`"`)

	rec = e.get(t, "/lab?guide=missing")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "no longer available")
}

func TestLab_Post(t *testing.T) {
	e := newTestEnv(t)

	form := url.Values{
		"bg":          {"#ff0000"},
		"fg":          {"#00ff00"},
		"line_height": {"1.6"},
		"font_size":   {"24"},
		"base":        {"16"},
		"preset":      {"protanopia"},
	}
	rec := e.post(t, "/lab", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!doctype html>")
	assert.Contains(t, body, `data-status="needs-improvement"`)
	assert.Contains(t, body, "Warning: under protanopia simulation")
	assert.Contains(t, body, "18.0pt")
	assert.Contains(t, body, "1.50rem")
	assert.Equal(t, []string{"protanopia"}, e.metrics.simulations)

	form.Set("preset", "tritanopia")
	rec = e.post(t, "/lab", form, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLab_UnitSamples(t *testing.T) {
	tests := []struct {
		name     string
		fontSize string
		want     []string
	}{
		{
			name:     "whole rem",
			fontSize: "24",
			want: []string{
				`style="font-size:18.0pt;"`,
				`style="font-size:24px;"`,
			},
		},
		{
			name:     "rounded rem renders its own size",
			fontSize: "17",
			want: []string{
				`style="font-size:12.8pt;"`,
				`style="font-size:16.96px;"`,
				`style="font-size:17px;"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			form := url.Values{
				"bg":        {"#ffffff"},
				"fg":        {"#000000"},
				"font_size": {tt.fontSize},
				"base":      {"16"},
			}
			rec := e.post(t, "/lab", form, true)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, w := range tt.want {
				assert.Contains(t, body, w)
			}
			assert.Equal(t, 4, strings.Count(body, `class="unit-sample"`))
		})
	}
}

func TestLab_InvalidInputsStillRender(t *testing.T) {
	e := newTestEnv(t)
	form := url.Values{"bg": {"nope"}, "fg": {"#ffffff"}, "font_size": {"0"}}
	rec := e.post(t, "/lab", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid colors are shown as black.")
	assert.Contains(t, rec.Body.String(), "Enter a positive font size")
}

func TestAPIContrast(t *testing.T) {
	e := newTestEnv(t)

	rec := e.get(t, "/api/contrast?bg=ffffff&fg=000000")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.InDelta(t, 21.0, got["ratio"], 1e-9)
	assert.Equal(t, "21.00 : 1", got["label"])
	assert.Equal(t, "AAA", got["level"])
	assert.Equal(t, true, got["aa"])
	assert.Equal(t, "#000000", got["best_text"])

	rec = e.get(t, "/api/contrast?bg=%23ff0000&fg=%23ffffff")
	got = decode(t, rec)
	assert.Equal(t, "AA Large", got["level"])
	assert.Equal(t, false, got["aa"])
	assert.Equal(t, true, got["aa_large"])

	rec = e.get(t, "/api/contrast?bg=%23fff&fg=000000")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "bg")
}

func TestAPISimulate(t *testing.T) {
	e := newTestEnv(t)

	got := decode(t, e.get(t, "/api/simulate?color=%23ff0000"))
	assert.Equal(t, "red-green", got["preset"])
	assert.Equal(t, "#9fb300", got["simulated"])

	got = decode(t, e.get(t, "/api/simulate?color=ff0000&preset=Protanopia"))
	assert.Equal(t, "protanopia", got["preset"])
	assert.Equal(t, "#918e00", got["simulated"])

	rec := e.get(t, "/api/simulate?color=ff0000&preset=tritanopia")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.get(t, "/api/simulate?color=red")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIPalette(t *testing.T) {
	e := newTestEnv(t)

	rec := e.get(t, "/api/palette?color=%233366cc")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	secondary := got["secondary"].(map[string]any)
	assert.Equal(t, "#cc9933", secondary["hex"])
	assert.Equal(t, "#333333", secondary["label_color"])
	light := got["primary_light"].(map[string]any)
	assert.Equal(t, "#5c85d6", light["hex"])

	rec = e.get(t, "/api/palette")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIUnits(t *testing.T) {
	e := newTestEnv(t)

	got := decode(t, e.get(t, "/api/units?px=24&base=16"))
	assert.InDelta(t, 18.0, got["pt"], 1e-9)
	assert.Equal(t, "1.50rem", got["rem_label"])
	assert.Equal(t, "24sp", got["sp_label"])

	got = decode(t, e.get(t, "/api/units?px=16"))
	assert.Equal(t, "1.00rem", got["rem_label"])

	for _, q := range []string{"px=0", "px=-4", "px=abc", "px=16&base=-1", "px=16&base=0"} {
		rec := e.get(t, "/api/units?"+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestAPIKnowledge(t *testing.T) {
	e := newTestEnv(t)
	rec := e.get(t, "/api/knowledge")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode(t, rec)
	guidelines := got["guidelines"].(map[string]any)
	assert.Contains(t, guidelines, "ios")
	assert.Contains(t, guidelines, "web")
	assert.Len(t, got["iri_colors"], 5)
}
