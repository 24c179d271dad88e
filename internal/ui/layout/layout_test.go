package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeaderShowsTitleAndUser(t *testing.T) {
	out := RenderHeader("Quiz Template", "Módulos", "Ana", 80)
	for _, want := range []string{"Quiz Template", "Módulos", "Ana"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeaderWithoutUser(t *testing.T) {
	out := RenderHeader("Quiz Template", "Entrar", "", 80)
	if strings.Contains(out, "●") {
		t.Error("header should not show a user marker when logged out")
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	if !strings.Contains(out, "Enter") || !strings.Contains(out, "Select") {
		t.Errorf("footer missing hint: %q", out)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", "Entrar", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Entrar"}}, 80)
	out := RenderFrame(header, "corpo", footer, 80, 24)
	if got := strings.Count(out, "\n") + 1; got != 24 {
		t.Errorf("frame has %d lines, want 24", got)
	}
	if BodyHeight(header, footer, 3) != 0 {
		t.Error("expected body height to clamp at zero")
	}
}

func TestMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage(40, 10)
	if !strings.Contains(out, "40 x 10") {
		t.Errorf("expected current size in message: %q", out)
	}
}
