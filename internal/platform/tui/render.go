package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/game"
)

// Each maze cell renders as two terminal columns so the board is roughly
// square on screen. Click-to-move mapping in the model relies on this.
const cellWidth = 2

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
	pelletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("223"))
	superStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	fruitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	frightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("21"))
	eatenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// ghostStyles maps each ghost color to its terminal style.
var ghostStyles = [game.NumGhosts]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("213")), // pink
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
}

// renderBoard draws the maze with every agent overlaid, one line per row.
func renderBoard(g *game.Game) string {
	type overlay struct {
		glyph string
		style lipgloss.Style
	}
	agents := make(map[[2]int8]overlay)

	for c := game.GhostColor(0); c < game.NumGhosts; c++ {
		info := g.Ghost(c)
		if info.Pos.IsEmpty() || !info.Active {
			continue
		}
		ov := overlay{glyph: "ᗣ ", style: ghostStyles[c]}
		if info.Eaten {
			ov = overlay{glyph: "\" ", style: eatenStyle}
		} else if info.Frightened {
			ov = overlay{glyph: "ᗣ ", style: frightStyle}
		}
		agents[[2]int8{info.Pos.Row, info.Pos.Col}] = ov
	}

	if fruit, ok := g.FruitPos(); ok {
		agents[[2]int8{fruit.Row, fruit.Col}] = overlay{glyph: "ó ", style: fruitStyle}
	}

	// Player last so it always draws on top.
	if player := g.PlayerPos(); !player.IsEmpty() {
		agents[[2]int8{player.Row, player.Col}] = overlay{glyph: "ᗧ ", style: playerStyle}
	}

	var sb strings.Builder
	for row := int8(0); row < game.MazeRows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := int8(0); col < game.MazeCols; col++ {
			if ov, ok := agents[[2]int8{row, col}]; ok {
				sb.WriteString(ov.style.Render(ov.glyph))
				continue
			}
			switch {
			case game.WallAt(row, col):
				sb.WriteString(wallStyle.Render("██"))
			case g.PelletAt(row, col) && game.SuperPelletAt(row, col):
				sb.WriteString(superStyle.Render("● "))
			case g.PelletAt(row, col):
				sb.WriteString(pelletStyle.Render("· "))
			default:
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// renderHUD draws the status line under the board.
func renderHUD(g *game.Game, status string) string {
	hud := fmt.Sprintf("score %d   level %d   lives %d   mode %s",
		g.Score(), g.Level(), g.Lives(), g.Mode())

	var sb strings.Builder
	sb.WriteString(hudStyle.Render(hud))
	if g.Lives() == 0 {
		sb.WriteString("   ")
		sb.WriteString(alertStyle.Render("GAME OVER - r to restart"))
	} else if g.Paused() {
		sb.WriteString("   ")
		sb.WriteString(alertStyle.Render("PAUSED"))
	}
	if status != "" {
		sb.WriteByte('\n')
		sb.WriteString(hudStyle.Render(status))
	}
	sb.WriteByte('\n')
	sb.WriteString(hudStyle.Render("wasd/arrows move · click to walk · p pause · q quit"))
	return sb.String()
}
