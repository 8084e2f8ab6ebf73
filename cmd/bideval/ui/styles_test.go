package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("BIDEVAL_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when BIDEVAL_DARK_MODE=1")
	}

	t.Setenv("BIDEVAL_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when BIDEVAL_DARK_MODE is unset")
	}
}

func TestDetectThemeFromColorFgBg(t *testing.T) {
	t.Setenv("BIDEVAL_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("background 0 should select the dark theme")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Error("background 15 should select the light theme")
	}
}

func TestRenderDivider(t *testing.T) {
	s := DefaultStyles()
	if s.RenderDivider(0) != "" {
		t.Error("zero width divider should be empty")
	}
	if s.RenderDivider(-3) != "" {
		t.Error("negative width divider should be empty")
	}
	if s.RenderDivider(4) == "" {
		t.Error("positive width divider should render")
	}
}
