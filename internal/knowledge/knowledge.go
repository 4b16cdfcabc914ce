// Package knowledge loads the static design knowledge base: per-platform
// typography guidelines and the mood-quadrant keyword/color groups.
package knowledge

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

//go:embed knowledge_base.json
var embedded []byte

var (
	ErrInvalidKnowledgeBase = errors.New("invalid knowledge base")
	ErrUnknownGroup         = errors.New("unknown mood group")
)

// FallbackPlatform is used when a platform has no guideline of its own.
const FallbackPlatform = "web"

// RequiredGroups are the mood group ids the wizard can land on. Every
// knowledge base must define all of them.
var RequiredGroups = []string{"group1", "group2", "group3", "group4", "group5"}

// Format is the encoding of a knowledge base document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Font describes the platform's reference typeface.
type Font struct {
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
	Unit   string `json:"unit" yaml:"unit"`
}

// Guideline holds a platform's typography recommendations.
type Guideline struct {
	Description string            `json:"description" yaml:"description"`
	DefaultSize string            `json:"defaultSize" yaml:"defaultSize"`
	MinimumSize string            `json:"minimumSize" yaml:"minimumSize"`
	TypeScale   map[string]string `json:"typeScale" yaml:"typeScale"`
	Font        Font              `json:"font" yaml:"font"`
	Source      string            `json:"source" yaml:"source"`
}

// Headline returns the headline size, falling back to the large title.
func (g Guideline) Headline() string {
	if h := g.TypeScale["headline"]; h != "" {
		return h
	}
	return g.TypeScale["largeTitle"]
}

// MoodGroup is one quadrant of the soft/hard x static/dynamic mood map.
type MoodGroup struct {
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	KeyColors   []string `json:"key_colors" yaml:"key_colors"`
}

// HasKeyword reports whether keyword belongs to the group.
func (g MoodGroup) HasKeyword(keyword string) bool {
	for _, k := range g.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// Base is a loaded knowledge base. It is read-only after Load.
type Base struct {
	Guidelines map[string]Guideline `json:"guidelines" yaml:"guidelines"`
	IRIColors  map[string]MoodGroup `json:"iri_colors" yaml:"iri_colors"`
}

// Default returns the knowledge base compiled into the binary.
func Default() (*Base, error) {
	return Decode(bytes.NewReader(embedded), FormatJSON)
}

// Load reads a knowledge base from disk. The format follows the file
// extension: .json, .yaml or .yml.
func Load(path string) (*Base, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer func() { _ = f.Close() }()

	kb, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kb, nil
}

// LoadOrDefault loads path, or the embedded base when path is empty.
func LoadOrDefault(path string) (*Base, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidKnowledgeBase, filepath.Ext(path))
	}
}

// Decode parses and validates a knowledge base document.
func Decode(r io.Reader, format Format) (*Base, error) {
	var kb Base
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&kb); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKnowledgeBase, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&kb); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKnowledgeBase, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidKnowledgeBase, format)
	}

	kb.normalize()
	if err := kb.Validate(); err != nil {
		return nil, err
	}
	return &kb, nil
}

// normalize folds platform keys to lower case so lookups match the
// display names ("iOS" -> "ios").
func (kb *Base) normalize() {
	folded := make(map[string]Guideline, len(kb.Guidelines))
	for k, g := range kb.Guidelines {
		folded[PlatformKey(k)] = g
	}
	kb.Guidelines = folded
}

// Validate checks the invariants the guide generator relies on.
func (kb *Base) Validate() error {
	if _, ok := kb.Guidelines[FallbackPlatform]; !ok {
		return fmt.Errorf("%w: missing %q guideline", ErrInvalidKnowledgeBase, FallbackPlatform)
	}
	for name, g := range kb.Guidelines {
		if g.DefaultSize == "" {
			return fmt.Errorf("%w: platform %q has no defaultSize", ErrInvalidKnowledgeBase, name)
		}
	}
	if len(kb.IRIColors) == 0 {
		return fmt.Errorf("%w: no iri_colors groups", ErrInvalidKnowledgeBase)
	}
	for _, id := range RequiredGroups {
		if _, ok := kb.IRIColors[id]; !ok {
			return fmt.Errorf("%w: missing group %q", ErrInvalidKnowledgeBase, id)
		}
	}
	for id, g := range kb.IRIColors {
		if len(g.Keywords) == 0 {
			return fmt.Errorf("%w: group %q has no keywords", ErrInvalidKnowledgeBase, id)
		}
		if len(g.KeyColors) == 0 {
			return fmt.Errorf("%w: group %q has no key colors", ErrInvalidKnowledgeBase, id)
		}
		for _, c := range g.KeyColors {
			if _, err := colormath.ParseHex(c); err != nil {
				return fmt.Errorf("%w: group %q: %v", ErrInvalidKnowledgeBase, id, err)
			}
		}
	}
	return nil
}

// PlatformKey maps a platform display name to its guideline key.
// A Caser is stateful, so one is built per call.
func PlatformKey(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// LookupPlatform returns the guideline for name, if the base has one.
func (kb *Base) LookupPlatform(name string) (Guideline, bool) {
	g, ok := kb.Guidelines[PlatformKey(name)]
	return g, ok
}

// Platform returns the guideline for name, or the web guideline.
func (kb *Base) Platform(name string) Guideline {
	if g, ok := kb.LookupPlatform(name); ok {
		return g
	}
	return kb.Guidelines[FallbackPlatform]
}

// Group returns a mood group by id ("group1".."group5").
func (kb *Base) Group(id string) (MoodGroup, error) {
	g, ok := kb.IRIColors[id]
	if !ok {
		return MoodGroup{}, fmt.Errorf("%w: %q", ErrUnknownGroup, id)
	}
	return g, nil
}

// PlatformKeys lists guideline keys in sorted order.
func (kb *Base) PlatformKeys() []string {
	keys := make([]string, 0, len(kb.Guidelines))
	for k := range kb.Guidelines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GroupIDs lists mood group ids in sorted order.
func (kb *Base) GroupIDs() []string {
	ids := make([]string, 0, len(kb.IRIColors))
	for id := range kb.IRIColors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
