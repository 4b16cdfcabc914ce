// Package messages holds the assistant texts shown while the wizard advances
// and the labels of the web UI, in English and Korean.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Keys into the catalog.
const (
	Welcome          = "welcome"
	PlatformChosen   = "platform_chosen"
	MoodKeywords     = "mood_keywords"
	KeywordColors    = "keyword_colors"
	ColorChosen      = "color_chosen"
	GuideReady       = "guide_ready"
	InitFailed       = "init_failed"
	LabExcellent     = "lab_excellent"
	LabGood          = "lab_good"
	LabNeedsWork     = "lab_needs_work"
	SimulationOK     = "simulation_ok"
	SimulationWarn   = "simulation_warning"
	InvalidColor     = "invalid_color"
	GuideUnavailable = "guide_unavailable"
)

// UI labels.
const (
	NavWizard          = "nav_wizard"
	NavLab             = "nav_lab"
	LabPageTitle       = "lab_page_title"
	StepBasics         = "step_basics"
	StepMood           = "step_mood"
	StepKeyword        = "step_keyword"
	StepColor          = "step_color"
	FieldService       = "field_service"
	FieldPlatform      = "field_platform"
	Choose             = "choose"
	MoodSoft           = "mood_soft"
	MoodHard           = "mood_hard"
	MoodStatic         = "mood_static"
	MoodDynamic        = "mood_dynamic"
	GenerateGuide      = "generate_guide"
	StartOver          = "start_over"
	HeadingPalette     = "heading_palette"
	HeadingTypography  = "heading_typography"
	HeadingAccess      = "heading_accessibility"
	FactBody           = "fact_body"
	FactHeadline       = "fact_headline"
	FactMinimum        = "fact_minimum"
	FactUnit           = "fact_unit"
	FactTextColor      = "fact_text_color"
	FactContrast       = "fact_contrast"
	SampleText         = "sample_text"
	OpenInLab          = "open_in_lab"
	ExportJSON         = "export_json"
	ExportCSV          = "export_csv"
	LabHeading         = "lab_heading"
	FieldBackground    = "field_background"
	FieldText          = "field_text"
	FieldLineHeight    = "field_line_height"
	FieldFontSize      = "field_font_size"
	FieldRootSize      = "field_root_size"
	FieldSimulation    = "field_simulation"
	Pangram            = "pangram"
	InvalidColorsBlack = "invalid_colors_black"
	HeadingUnits       = "heading_units"
	UnitsHint          = "units_hint"
	HeadingSimulation  = "heading_simulation"
)

var entries = map[language.Tag]map[string]string{
	language.English: {
		Welcome:          "Hello! I'm the TYPOUNIVERSE design assistant. Tell me what your service is for and which platform it targets.",
		PlatformChosen:   "You picked %s. %s The recommended body size is %s. Now set the mood of your service.",
		MoodKeywords:     "Here are keywords that fit a '%s' mood.",
		KeywordColors:    "These key colors suit '%s'. Pick your primary color.",
		ColorChosen:      "Great choice! The guide will be built around this color.",
		GuideReady:       "Your design guide for %s is ready. Try it out in the lab.",
		InitFailed:       "The assistant could not start. Please reload the page.",
		LabExcellent:     "Excellent: passes WCAG AAA.",
		LabGood:          "Good: passes WCAG AA.",
		LabNeedsWork:     "Needs improvement: below WCAG AA.",
		SimulationOK:     "The pair stays readable under %s simulation.",
		SimulationWarn:   "Warning: under %s simulation the contrast drops below 3:1.",
		InvalidColor:     "%q is not a valid #RRGGBB color.",
		GuideUnavailable: "That guide is no longer available. Generate a new one.",

		NavWizard:          "Guide wizard",
		NavLab:             "Lab",
		LabPageTitle:       "TYPOUNIVERSE Lab",
		StepBasics:         "1. Service & platform",
		StepMood:           "2. Mood",
		StepKeyword:        "3. Keyword",
		StepColor:          "4. Primary color",
		FieldService:       "Service",
		FieldPlatform:      "Platform",
		Choose:             "Choose…",
		MoodSoft:           "Soft",
		MoodHard:           "Hard",
		MoodStatic:         "Static",
		MoodDynamic:        "Dynamic",
		GenerateGuide:      "Generate guide",
		StartOver:          "Start over",
		HeadingPalette:     "Color palette",
		HeadingTypography:  "Typography",
		HeadingAccess:      "Accessibility",
		FactBody:           "Body",
		FactHeadline:       "Headline",
		FactMinimum:        "Minimum",
		FactUnit:           "Unit",
		FactTextColor:      "Text color",
		FactContrast:       "Contrast",
		SampleText:         "Aa Sample text",
		OpenInLab:          "Open in lab",
		ExportJSON:         "Export JSON",
		ExportCSV:          "Export CSV",
		LabHeading:         "Interactive lab",
		FieldBackground:    "Background",
		FieldText:          "Text",
		FieldLineHeight:    "Line height",
		FieldFontSize:      "Font size (px)",
		FieldRootSize:      "Root size (px)",
		FieldSimulation:    "Simulation",
		Pangram:            "The quick brown fox jumps over the lazy dog. 다람쥐 헌 쳇바퀴에 타고파.",
		InvalidColorsBlack: "Invalid colors are shown as black.",
		HeadingUnits:       "Units",
		UnitsHint:          "Enter a positive font size and root size.",
		HeadingSimulation:  "Color-blindness simulation",
	},
	language.Korean: {
		Welcome:          "안녕하세요! TYPOUNIVERSE AI Design Assistant입니다. 먼저 서비스의 목적과 타겟 플랫폼을 알려주세요.",
		PlatformChosen:   "%s 플랫폼을 선택하셨군요! %s 권장 본문 크기는 %s입니다. 이제 서비스의 핵심 분위기를 정해주세요.",
		MoodKeywords:     "선택하신 '%s' 분위기에 맞는 키워드들을 확인해 보세요.",
		KeywordColors:    "선택하신 '%s' 키워드에 어울리는 대표 색상들을 제안합니다. 주조 색상을 선택해주세요.",
		ColorChosen:      "최고의 선택입니다! 이 색상을 기준으로 가이드를 생성합니다.",
		GuideReady:       "%s 플랫폼에 최적화된 디자인 가이드가 생성되었습니다! 인터랙티브 실험실에서 더 자세히 테스트해보세요.",
		InitFailed:       "시스템 초기화 중 오류가 발생했습니다. 페이지를 새로고침해주세요.",
		LabExcellent:     "훌륭합니다: WCAG AAA 기준을 충족합니다.",
		LabGood:          "좋습니다: WCAG AA 기준을 충족합니다.",
		LabNeedsWork:     "개선이 필요합니다: WCAG AA 기준 미달입니다.",
		SimulationOK:     "%s 시뮬레이션에서도 가독성이 유지됩니다.",
		SimulationWarn:   "경고: %s 시뮬레이션에서 대비가 3:1 미만으로 떨어집니다.",
		InvalidColor:     "%q 은(는) 올바른 #RRGGBB 색상이 아닙니다.",
		GuideUnavailable: "해당 가이드를 더 이상 사용할 수 없습니다. 새로 생성해주세요.",

		NavWizard:          "가이드 마법사",
		NavLab:             "실험실",
		LabPageTitle:       "TYPOUNIVERSE 실험실",
		StepBasics:         "1. 서비스 및 플랫폼",
		StepMood:           "2. 분위기",
		StepKeyword:        "3. 키워드",
		StepColor:          "4. 주조 색상",
		FieldService:       "서비스",
		FieldPlatform:      "플랫폼",
		Choose:             "선택하세요…",
		MoodSoft:           "부드러운",
		MoodHard:           "딱딱한",
		MoodStatic:         "정적인",
		MoodDynamic:        "동적인",
		GenerateGuide:      "가이드 생성",
		StartOver:          "처음부터 다시",
		HeadingPalette:     "색상 팔레트",
		HeadingTypography:  "타이포그래피",
		HeadingAccess:      "접근성",
		FactBody:           "본문",
		FactHeadline:       "헤드라인",
		FactMinimum:        "최소",
		FactUnit:           "단위",
		FactTextColor:      "글자 색상",
		FactContrast:       "대비",
		SampleText:         "Aa 샘플 텍스트",
		OpenInLab:          "실험실에서 열기",
		ExportJSON:         "JSON 내보내기",
		ExportCSV:          "CSV 내보내기",
		LabHeading:         "인터랙티브 실험실",
		FieldBackground:    "배경",
		FieldText:          "글자",
		FieldLineHeight:    "줄 간격",
		FieldFontSize:      "글자 크기 (px)",
		FieldRootSize:      "기준 크기 (px)",
		FieldSimulation:    "시뮬레이션",
		Pangram:            "다람쥐 헌 쳇바퀴에 타고파. The quick brown fox jumps over the lazy dog.",
		InvalidColorsBlack: "유효하지 않은 색상은 검정색으로 표시됩니다.",
		HeadingUnits:       "단위",
		UnitsHint:          "양수인 글자 크기와 기준 크기를 입력하세요.",
		HeadingSimulation:  "색각 이상 시뮬레이션",
	},
}

// Catalog resolves message keys for a request's preferred language.
type Catalog struct {
	builder   *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
}

// New builds the catalog. lang is the fallback used when a request's
// Accept-Language matches nothing; it must be "en" or "ko".
func New(lang string) (*Catalog, error) {
	fallback, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}
	base, _ := fallback.Base()
	fallback = language.Make(base.String())
	if _, ok := entries[fallback]; !ok {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("registering %s/%s: %w", tag, key, err)
			}
		}
	}

	supported := []language.Tag{fallback}
	for tag := range entries {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}

	return &Catalog{
		builder:   b,
		matcher:   language.NewMatcher(supported),
		supported: supported,
	}, nil
}

// Match picks the supported language for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.supported[0]
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.supported[0]
	}
	return c.supported[idx]
}

// Printer returns a printer bound to the language matched from acceptLanguage.
func (c *Catalog) Printer(acceptLanguage string) *message.Printer {
	return message.NewPrinter(c.Match(acceptLanguage), message.Catalog(c.builder))
}

// Default returns a printer for the fallback language.
func (c *Catalog) Default() *message.Printer {
	return message.NewPrinter(c.supported[0], message.Catalog(c.builder))
}
