package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalog_Match(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"ko-KR,ko;q=0.9,en;q=0.8", language.Korean},
		{"en-GB", language.English},
		{"fr-FR", language.English},
		{"not a header;;", language.English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Match(tt.header), "header %q", tt.header)
	}
}

func TestCatalog_FallbackLanguage(t *testing.T) {
	c, err := New("ko-KR")
	require.NoError(t, err)

	assert.Equal(t, language.Korean, c.Match("fr"))
	assert.Contains(t, c.Default().Sprintf(Welcome), "안녕하세요")
}

func TestCatalog_Printer(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	en := c.Printer("en-US")
	assert.Equal(t, "Your design guide for iOS is ready. Try it out in the lab.", en.Sprintf(GuideReady, "iOS"))

	ko := c.Printer("ko")
	assert.Equal(t, "선택하신 'Bold' 키워드에 어울리는 대표 색상들을 제안합니다. 주조 색상을 선택해주세요.", ko.Sprintf(KeywordColors, "Bold"))
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	en := entries[language.English]
	ko := entries[language.Korean]
	require.Len(t, ko, len(en))
	for key := range en {
		assert.NotEmpty(t, ko[key], "missing Korean text for %s", key)
	}
}

func TestNew_Unsupported(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)

	_, err = New("???")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	ctx := NewContext(context.Background(), c.Printer("ko"))
	assert.Equal(t, "가이드 마법사", FromContext(ctx).Sprintf(NavWizard))

	assert.Equal(t, "Guide wizard", FromContext(context.Background()).Sprintf(NavWizard))
}
