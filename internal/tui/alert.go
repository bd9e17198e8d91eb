package tui

type alertModel struct {
	message string
}

func (m alertModel) View() string {
	content := m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
