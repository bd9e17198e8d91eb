package tui

import "strings"

const uiDivider = "──────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// sanitizeNumber keeps only keypad characters, so "(555) 123-4567" becomes
// "5551234567".
func sanitizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isKeypadRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isKeypadRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '*' || r == '#' || r == '+'
}
