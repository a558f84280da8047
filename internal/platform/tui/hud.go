package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ephemera/internal/core"
)

// hudHeight is the number of lines above the playfield; one help line sits below.
const (
	hudHeight  = 2
	helpHeight = 1
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorGray)))
	hudValueStyle = lipgloss.NewStyle().Bold(true)
	skillOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorLargeParticle)))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(string(core.ColorBorder))).
			Padding(1, 3).
			Align(lipgloss.Center)

	dangerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorDanger)))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// renderHUD draws the two status lines: score, species and skill on the
// first, the experience bar on the second.
func (m Model) renderHUD() string {
	st := m.frame.Status

	var top strings.Builder
	top.WriteString(hudLabelStyle.Render("Score "))
	top.WriteString(hudValueStyle.Render(fmt.Sprintf("%d", st.Score)))
	top.WriteString(hudLabelStyle.Render("   Lv "))
	top.WriteString(hudValueStyle.Render(fmt.Sprintf("%d/%d", st.Level, st.MaxLevel)))
	top.WriteString(" ")
	top.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(string(m.speciesColor(st.Level)))).Render(st.SpeciesName))
	top.WriteString(hudLabelStyle.Render("   Particles "))
	top.WriteString(hudValueStyle.Render(fmt.Sprintf("%.1f", st.Particles)))
	if st.SkillName != "" {
		top.WriteString(hudLabelStyle.Render("   Skill "))
		if st.SkillActive {
			top.WriteString(skillOnStyle.Render(st.SkillName + " ON"))
		} else {
			top.WriteString(st.SkillName)
		}
	}

	ratio := 0.0
	if st.Ceiling > 0 {
		ratio = core.ClampF(float64(st.Experience)/float64(st.Ceiling), 0, 1)
	}
	bottom := m.xp.ViewAs(ratio) + hudLabelStyle.Render(fmt.Sprintf("  %d/%d XP", st.Experience, st.Ceiling))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(top.String()) + "\n" + bottom
}

func (m Model) speciesColor(level int) core.Color {
	return m.session.Game().Species().Lookup(level).Color
}

// overlay centres a box over the playfield area.
func (m Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.fieldRows(), lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

func (m Model) startView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("E P H E M E R A"))
	b.WriteString("\n")
	b.WriteString("Eat what is smaller. Flee what is larger.\n")
	b.WriteString("Evolve through every form to transcend.\n\n")
	b.WriteString(mutedStyle.Render("Steer with the mouse or arrow keys.\nHold the mouse button or press space for your skill."))
	b.WriteString("\n\n")
	b.WriteString(hudValueStyle.Render("Press enter to begin"))
	return m.overlay(b.String())
}

func (m Model) evolutionView() string {
	info := m.session.Game().Species().Lookup(m.evolveLevel)
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(info.Color))).Render(info.Name)

	var b strings.Builder
	b.WriteString(titleStyle.Render("EVOLUTION"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Level %d: you became %s\n\n", m.evolveLevel, name))
	if m.loreLoading {
		b.WriteString(m.spin.View() + mutedStyle.Render(" sensing the change..."))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(min(48, m.width-10)).Render(m.loreText))
	}
	b.WriteString("\n\n")
	b.WriteString(hudLabelStyle.Render("New skill: "))
	b.WriteString(info.Skill.Name)
	b.WriteString("\n\n")
	b.WriteString(hudValueStyle.Render("Press enter to continue"))
	return m.overlay(b.String())
}

func (m Model) gameOverView() string {
	st := m.frame.Status
	var b strings.Builder
	b.WriteString(dangerStyle.Render("CONSUMED"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("A larger organism ate your %s.\n\n", st.SpeciesName))
	b.WriteString(fmt.Sprintf("Final score: %s\n", hudValueStyle.Render(fmt.Sprintf("%d", st.Score))))
	b.WriteString(fmt.Sprintf("Level reached: %d\n\n", st.Level))
	b.WriteString(mutedStyle.Render("r: restart   q: quit"))
	return m.overlay(b.String())
}

func (m Model) victoryView() string {
	st := m.frame.Status
	var b strings.Builder
	b.WriteString(skillOnStyle.Render("TRANSCENDENCE"))
	b.WriteString("\n\n")
	b.WriteString("You outgrew every form this world could hold.\n\n")
	b.WriteString(fmt.Sprintf("Final score: %s\n\n", hudValueStyle.Render(fmt.Sprintf("%d", st.Score))))
	b.WriteString(mutedStyle.Render("r: play again   q: quit"))
	return m.overlay(b.String())
}
