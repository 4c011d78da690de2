package components

import (
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#3b82f6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#111827", theme.Palette.Surface.OnBase.Light)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), theme.Borders.Thick)

	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSizeMedium])
	assert.Equal(t, 1, theme.Spacing.Margin[SpacingSizeSmall])

	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	assert.True(t, theme.Typography.Label.GetBold(), "labels should be bold")
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should invert surface base")
	assert.NotEqual(t, light.Typography.Base.GetForeground(), dark.Typography.Base.GetForeground(), "dark theme should adjust typography foreground")
}

func TestNormalizeFillsSpacing(t *testing.T) {
	theme := normalizeTheme(Theme{})
	assert.Equal(t, defaultSpacingTable(), theme.Spacing.Padding)
	assert.Equal(t, defaultSpacingTable(), theme.Spacing.Margin)
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()
	t.Cleanup(func() { SetTheme(original) })

	custom := DefaultTheme()
	custom.Palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#0000ff", Dark: "#1e3a8a"}
	SetTheme(custom)

	active := GetTheme()
	assert.Equal(t, "#0000ff", active.Palette.Primary.Base.Light)
}

func TestThemeManagerConcurrentAccess(t *testing.T) {
	manager := NewThemeManager(DefaultTheme())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			manager.SetTheme(DarkTheme())
		}()
		go func() {
			defer wg.Done()
			_ = manager.Theme().Palette.Primary.Base
		}()
	}
	wg.Wait()

	assert.Equal(t, DarkTheme().Palette.Surface, manager.Theme().Palette.Surface)
}

func TestSpacingHelpers(t *testing.T) {
	table := defaultSpacingTable()
	assert.Equal(t, 2, spacingLookup(table, SpacingSizeMedium))
	assert.Equal(t, 2, spacingLookup(table, SpacingSize(42)), "unknown sizes fall back to medium")

	style := Style(lipgloss.NewStyle(), MarginTop(SpacingSizeSmall), PaddingX(SpacingSizeMedium))
	assert.Equal(t, 1, style.GetMarginTop())
	assert.Equal(t, 2, style.GetPaddingLeft())
}

func TestStyleApplier(t *testing.T) {
	style := Style(
		lipgloss.NewStyle(),
		Background(PalettePrimary),
		PaddingX(SpacingSizeMedium),
		Border(BorderVariantRounded),
	)

	assert.NotEmpty(t, style.GetBackground(), "expected background to be set")
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
}

func TestInputStyleFrames(t *testing.T) {
	assert.Equal(t, lipgloss.ThickBorder(), InputStyle(InputStateFocus).GetBorderStyle())
	assert.Equal(t, lipgloss.RoundedBorder(), InputStyle(InputStateDefault).GetBorderStyle())
	assert.Equal(t, lipgloss.RoundedBorder(), InputStyle(InputStateDisabled).GetBorderStyle())
	assert.True(t, InputStyle(InputStateDisabled).GetFaint())
}

func TestTypographyStyle(t *testing.T) {
	assert.True(t, TypographyStyle(TypographyVariantEmphasis).GetBold(), "emphasis typography should be bold")
	assert.True(t, TypographyStyle(TypographyVariantHint).GetFaint(), "hints should be faint")
}
