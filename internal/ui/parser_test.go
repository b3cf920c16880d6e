package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSSBasicRules(t *testing.T) {
	sheet, err := ParseCSS(`
		/* panel chrome */
		.panel { background: #333; width: 236px; left: 24; }
		#title { color: #fff; top: 10%; }
	`)

	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#333", sheet.Rules[0].Props["background"])
	assert.Equal(t, "236px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "#title", sheet.Rules[1].Selector)
}

func TestParseCSSGroupedSelectors(t *testing.T) {
	sheet, err := ParseCSS(`
		.a, .b, #c { color: #fff; width: 40px; }
		.b { top: 10px; }
	`)

	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)
	assert.Equal(t, ".a", sheet.Rules[0].Selector)
	assert.Equal(t, ".b", sheet.Rules[1].Selector)
	assert.Equal(t, "#c", sheet.Rules[2].Selector)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "#fff", sheet.Rules[i].Props["color"])
	}
	assert.Equal(t, "10px", sheet.Rules[3].Props["top"])
}

func TestParseHexColorAlpha(t *testing.T) {
	c, ok := ParseHexColor("#202020e6")
	require.True(t, ok)
	assert.Equal(t, uint8(0x20), c.R)
	assert.Equal(t, uint8(0xe6), c.A)

	c, ok = ParseHexColor("#abc")
	require.True(t, ok)
	assert.Equal(t, uint8(255), c.A)

	_, ok = ParseHexColor("#12345")
	assert.False(t, ok)
}

func TestParseCSSSkipsInvalidSelectors(t *testing.T) {
	sheet, err := ParseCSS(`
		div { color: #f00; }
		.ok { color: #0f0; }
	`)

	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, ".ok", sheet.Rules[0].Selector)
}

func TestResolveProps(t *testing.T) {
	style := ResolveProps(map[string]string{
		"background": "#102030",
		"color":      "#fff",
		"border":     "#000",
		"width":      "284px",
		"left":       "100%",
		"top":        "48",
		"padding":    "6",
	})

	assert.Equal(t, uint8(0x10), style.Background.R)
	assert.Equal(t, uint8(0x20), style.Background.G)
	assert.Equal(t, uint8(0x30), style.Background.B)
	assert.Equal(t, uint8(255), style.Color.R)
	assert.True(t, style.HasBorder)
	assert.Equal(t, int32(284), style.Width)
	assert.Equal(t, int32(100), style.LeftPct)
	assert.Equal(t, int32(-1), style.TopPct)
	assert.Equal(t, int32(48), style.Top)
	assert.Equal(t, int32(6), style.Padding)
}

func TestDefaultPanelCSSParses(t *testing.T) {
	sheet, err := ParseCSS(defaultPanelCSS)

	require.NoError(t, err)
	assert.NotEmpty(t, sheet.Rules)
	for _, rule := range sheet.Rules {
		assert.NotEmpty(t, rule.Props, "rule %s has no declarations", rule.Selector)
	}
}
