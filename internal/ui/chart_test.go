package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAreaChart_Shape(t *testing.T) {
	rows := areaChart([]float64{0, 50, 100}, 3, 2)
	want := []string{"  █", " ██"}
	if len(rows) != len(want) {
		t.Fatalf("areaChart rows = %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestAreaChart_PartialBlocks(t *testing.T) {
	rows := areaChart([]float64{25, 100}, 2, 1)
	if got := []rune(rows[0]); got[0] != '▂' || got[1] != '█' {
		t.Fatalf("areaChart = %q, want ▂█", rows[0])
	}
}

func TestAreaChart_ResamplesToWidth(t *testing.T) {
	values := make([]float64, 14)
	for i := range values {
		values[i] = float64(1200 + i*100)
	}
	rows := areaChart(values, 40, 6)
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 40 {
			t.Fatalf("row %d has %d cells, want 40", i, n)
		}
	}
	if last := []rune(rows[0]); last[39] != '█' {
		t.Fatalf("peak column should reach the top row, got %q", rows[0])
	}
}

func TestAreaChart_Degenerate(t *testing.T) {
	if rows := areaChart([]float64{1}, 0, 3); rows != nil {
		t.Fatalf("zero width = %v, want nil", rows)
	}
	rows := areaChart(nil, 4, 2)
	if len(rows) != 2 || strings.TrimSpace(strings.Join(rows, "")) != "" {
		t.Fatalf("empty input = %q, want blank rows", rows)
	}
	rows = areaChart([]float64{0, 0}, 2, 1)
	if strings.TrimSpace(rows[0]) != "" {
		t.Fatalf("all-zero input = %q, want blank", rows[0])
	}
}

func TestRenderTitledBox_Dimensions(t *testing.T) {
	m := New(Options{PrefsPath: t.TempDir() + "/prefs.toml"})
	content := "short\n" + strings.Repeat("x", 80) + "\nthird"

	box := m.renderTitledBox("Operations Log", content, 30, 6, true)
	lines := strings.Split(box, "\n")
	if len(lines) != 6 {
		t.Fatalf("box has %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[0], "Operations Log") {
		t.Fatalf("top border %q missing title", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Operations", 20, "Operations"},
		{"Operations", 5, "Oper…"},
		{"Operations", 1, "…"},
		{"Operations", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
