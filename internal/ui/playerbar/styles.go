package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prodify/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func producerStyle() lipgloss.Style {
	return styles.T().S().Producer
}

func statusStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressBarFilled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().ProgressFilled)
}

func progressBarEmpty() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().ProgressEmpty)
}
