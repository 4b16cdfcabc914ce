package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	kb, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"android", "desktop", "ios", "tablet", "vr", "wearable", "web"}, kb.PlatformKeys())
	assert.Equal(t, []string{"group1", "group2", "group3", "group4", "group5"}, kb.GroupIDs())

	// Every dropdown platform has its own guideline.
	for _, p := range Platforms {
		_, ok := kb.LookupPlatform(p.Value)
		assert.True(t, ok, p.Value)
	}
}

func TestPlatform_FoldsCaseAndFallsBack(t *testing.T) {
	kb, err := Default()
	require.NoError(t, err)

	ios := kb.Platform("iOS")
	assert.Equal(t, "17pt", ios.DefaultSize)
	assert.Equal(t, "pt", ios.Font.Unit)

	_, ok := kb.LookupPlatform("smart-fridge")
	assert.False(t, ok)
	assert.Equal(t, kb.Guidelines["web"], kb.Platform("smart-fridge"))
}

func TestGuideline_Headline(t *testing.T) {
	g := Guideline{TypeScale: map[string]string{"headline": "17pt", "largeTitle": "34pt"}}
	assert.Equal(t, "17pt", g.Headline())

	g = Guideline{TypeScale: map[string]string{"largeTitle": "32pt"}}
	assert.Equal(t, "32pt", g.Headline())

	assert.Equal(t, "", Guideline{}.Headline())
}

func TestGroup(t *testing.T) {
	kb, err := Default()
	require.NoError(t, err)

	g, err := kb.Group("group3")
	require.NoError(t, err)
	assert.True(t, g.HasKeyword("Elegant"))
	assert.False(t, g.HasKeyword("Playful"))
	assert.Contains(t, g.KeyColors, "#1E3A5F")

	_, err = kb.Group("group9")
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

const yamlBase = `
guidelines:
  Web:
    description: web
    defaultSize: 16px
    minimumSize: 12px
    typeScale:
      headline: 32px
    font:
      unit: rem
    source: test
iri_colors:
  group1:
    description: soft and dynamic
    keywords: [Playful]
    key_colors: ["#FF8FAB"]
  group2:
    description: soft and static
    keywords: [Calm]
    key_colors: ["#A8D5BA"]
  group3:
    description: hard and static
    keywords: [Elegant]
    key_colors: ["#1E3A5F"]
  group4:
    description: hard and dynamic
    keywords: [Bold]
    key_colors: ["#D7263D"]
  group5:
    description: balanced
    keywords: [Simple]
    key_colors: ["#4A90E2"]
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBase), 0o644))

	kb, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "32px", kb.Platform("web").Headline())
	assert.Equal(t, []string{"web"}, kb.PlatformKeys())
	assert.Equal(t, RequiredGroups, kb.GroupIDs())
}

func TestLoad_JSONMatchesEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, embedded, 0o644))

	kb, err := Load(path)
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, kb)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "kb.toml"))
	assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadOrDefault("")
	assert.NoError(t, err)
}

func TestDecode_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{`},
		{"no web", `{"guidelines":{"ios":{"defaultSize":"17pt"}},"iri_colors":{"g":{"keywords":["a"],"key_colors":["#000000"]}}}`},
		{"no default size", `{"guidelines":{"web":{}},"iri_colors":{"g":{"keywords":["a"],"key_colors":["#000000"]}}}`},
		{"no groups", `{"guidelines":{"web":{"defaultSize":"16px"}}}`},
		{"no keywords", `{"guidelines":{"web":{"defaultSize":"16px"}},"iri_colors":{"g":{"key_colors":["#000000"]}}}`},
		{"no colors", `{"guidelines":{"web":{"defaultSize":"16px"}},"iri_colors":{"g":{"keywords":["a"]}}}`},
		{"bad color", `{"guidelines":{"web":{"defaultSize":"16px"}},"iri_colors":{"g":{"keywords":["a"],"key_colors":["#fff"]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(withGroups(tt.doc)), FormatJSON)
			assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)
		})
	}

	_, err := Decode(strings.NewReader("{}"), Format("xml"))
	assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)
}

func TestDecode_MissingGroup(t *testing.T) {
	doc := strings.Replace(yamlBase, "  group4:\n", "  group9:\n", 1)
	_, err := Decode(strings.NewReader(doc), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)
	assert.ErrorContains(t, err, `missing group "group4"`)

	_, err = Decode(strings.NewReader(yamlBase), FormatYAML)
	assert.NoError(t, err)
}

// withGroups adds the required groups a case does not define itself, so
// each case fails only on the defect it names.
func withGroups(doc string) string {
	if !strings.Contains(doc, `"iri_colors":{`) {
		return doc
	}
	var extra strings.Builder
	for _, id := range RequiredGroups {
		if strings.Contains(doc, `"`+id+`"`) {
			continue
		}
		extra.WriteString(`"` + id + `":{"keywords":["k"],"key_colors":["#000000"]},`)
	}
	return strings.Replace(doc, `"iri_colors":{`, `"iri_colors":{`+extra.String(), 1)
}

func TestOptions(t *testing.T) {
	assert.True(t, IsService("학습"))
	assert.False(t, IsService("Learning"))
	assert.True(t, IsPlatform("VR"))
	assert.False(t, IsPlatform("vr"))
}
