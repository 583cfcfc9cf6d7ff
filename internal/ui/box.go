package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box renders body inside a rounded border measuring exactly width × height
// cells. The title is set into the top edge. A non-empty footer takes the
// last content line when there is room for at least one body line above it.
// Returns "" when the box cannot fit a border.
func Box(title, body, footer string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW, innerH := width-2, height-2
	border := lipgloss.RoundedBorder()
	edge := Styles.Border.Render

	bodyH := innerH
	if footer != "" && innerH >= 2 {
		bodyH--
	}
	lines := strings.Split(FitToHeight(body, bodyH), "\n")
	if bodyH == 0 {
		lines = nil
	}
	if bodyH < innerH {
		lines = append(lines, footer)
	}

	var b strings.Builder
	b.WriteString(topEdge(border, title, innerW))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(edge(border.Left) + fitWidth(l, innerW) + edge(border.Right))
	}
	b.WriteString("\n")
	b.WriteString(edge(border.BottomLeft + strings.Repeat(border.Bottom, innerW) + border.BottomRight))
	return b.String()
}

func topEdge(border lipgloss.Border, title string, innerW int) string {
	edge := Styles.Border.Render
	// Keep one edge glyph on each side of the title.
	room := innerW - 2
	if title == "" || room < 1 {
		return edge(border.TopLeft + strings.Repeat(border.Top, innerW) + border.TopRight)
	}
	label := ansi.Truncate(" "+title+" ", room, "…")
	rest := innerW - 1 - ansi.StringWidth(label)
	return edge(border.TopLeft+border.Top) +
		Styles.Title.Render(label) +
		edge(strings.Repeat(border.Top, rest)+border.TopRight)
}

// FitToHeight ensures content exactly fills targetHeight lines,
// truncating if too long or padding if too short.
func FitToHeight(content string, targetHeight int) string {
	if targetHeight <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
