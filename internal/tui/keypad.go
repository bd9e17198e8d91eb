package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var keypadLayout = [4][3]rune{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{'*', '0', '#'},
}

type keypadModel struct {
	row, col int
}

func (k keypadModel) current() rune {
	return keypadLayout[k.row][k.col]
}

// move shifts the cursor, clamped to the grid.
func (k keypadModel) move(dRow, dCol int) keypadModel {
	k.row = min(max(k.row+dRow, 0), len(keypadLayout)-1)
	k.col = min(max(k.col+dCol, 0), len(keypadLayout[0])-1)
	return k
}

func (k keypadModel) View(focused bool) string {
	rows := make([]string, 0, len(keypadLayout))
	for r, line := range keypadLayout {
		cells := make([]string, 0, len(line))
		for c, key := range line {
			style := keyStyle
			if focused && r == k.row && c == k.col {
				style = keyFocusedStyle
			}
			cells = append(cells, style.Render(string(key)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
