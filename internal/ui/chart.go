package ui

import (
	"strings"
)

var chartBlocks = []rune("▁▂▃▄▅▆▇█")

// areaChart renders values as a filled area chart of exactly height lines,
// each width cells wide. The vertical axis starts at zero and tops out at the
// largest value. Values are resampled to fit the width.
func areaChart(values []float64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	lines := make([][]rune, height)
	for i := range lines {
		lines[i] = []rune(strings.Repeat(" ", width))
	}
	if len(values) == 0 {
		return joinRows(lines)
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak <= 0 {
		return joinRows(lines)
	}

	steps := height * 8
	for col := range width {
		v := values[col*len(values)/width]
		level := int(v / peak * float64(steps))
		for row := range height {
			fill := level - (height-1-row)*8
			switch {
			case fill >= 8:
				lines[row][col] = chartBlocks[7]
			case fill > 0:
				lines[row][col] = chartBlocks[fill-1]
			}
		}
	}
	return joinRows(lines)
}

func joinRows(rows [][]rune) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}
