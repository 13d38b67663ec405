package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// maxScores is the number of session games listed on the scoreboard.
const maxScores = 10

// scoreboardView is the session scoreboard panel shown between games.
type scoreboardView struct {
	table table.Model
	stats storage.SessionStats
	empty bool
	err   error
}

// newScoreboardView loads the current session results from the store.
// A nil store yields an empty board.
func newScoreboardView(store *storage.Store, height int) scoreboardView {
	v := scoreboardView{table: createScoreTable(height)}
	if store == nil {
		v.empty = true
		return v
	}

	games, err := store.TopGames(maxScores)
	if err != nil {
		v.err = err
		return v
	}
	v.stats, err = store.Stats()
	if err != nil {
		v.err = err
		return v
	}

	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.Level),
			g.CreatedAt.Local().Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
	v.empty = len(games) == 0
	return v
}

// createScoreTable creates the results table with its styles.
func createScoreTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(height-10, 3)), // Leave room for title, totals and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// View renders the panel centered in a width x height area.
func (v scoreboardView) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SESSION SCORES"))
	b.WriteString("\n")

	switch {
	case v.err != nil:
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("Scoreboard unavailable: " + v.err.Error()))
	case v.empty:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No games finished yet.\nScores are kept until you quit."))
	default:
		b.WriteString(v.table.View())
		b.WriteString("\n\n")
		totalsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(totalsStyle.Render(fmt.Sprintf(
			"games %d  best %d  best level %d  average %.0f",
			v.stats.GamesPlayed, v.stats.HighScore, v.stats.BestLevel, v.stats.AvgScore,
		)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}
