package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/yeager/lugn/internal/breathing"
	"github.com/yeager/lugn/internal/model"
	"github.com/yeager/lugn/internal/player"
	"github.com/yeager/lugn/internal/strategy"
)

// maxSessionRows is how many recent sessions the Sessions page shows.
const maxSessionRows = 15

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🌿 lugn"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.emergency {
		b.WriteString(m.viewEmergency())
	} else {
		switch m.page {
		case pageHome:
			b.WriteString(m.viewHome())
		case pageBreathe:
			b.WriteString(m.viewBreathe())
		case pageMusic:
			b.WriteString(m.viewMusic())
		case pageStrategies:
			b.WriteString(m.viewStrategies())
		case pageStress:
			b.WriteString(m.viewStress())
		case pageSessions:
			b.WriteString(m.viewSessions())
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for p := pageHome; p < pageCount; p++ {
		if p == m.page && !m.emergency {
			tabs = append(tabs, activeTabStyle.Render(p.title()))
		} else {
			tabs = append(tabs, tabStyle.Render(p.title()))
		}
	}
	return strings.Join(tabs, "·")
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("A quiet place to catch your breath."))
	b.WriteString("\n\n")

	descriptions := map[page]string{
		pageBreathe:    "guided breathing exercise",
		pageMusic:      "calming background music",
		pageStrategies: "calming strategies",
		pageStress:     "how stressed are you right now?",
		pageSessions:   "your recent sessions",
	}

	for i, p := range homeItems {
		cursor := "  "
		line := fmt.Sprintf("%d. %-12s %s", i+1, p.title(), descriptions[p])
		if i == m.homeIndex {
			cursor = "› "
			b.WriteString(selectedStyle.Render(cursor + line))
		} else {
			b.WriteString(cursor + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(errorStyle.Render("🆘 e: I need help NOW"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewBreathe() string {
	var b strings.Builder

	phase := m.cycle.Phase()
	style := phaseStyle(phase)

	b.WriteString(style.Render(breathCircle(m.cycle.Radius(0.3, 1.0))))
	b.WriteString("\n")
	b.WriteString(style.Render(phaseLabel(phase)))
	b.WriteString("\n\n")

	if m.cycle.Running() {
		b.WriteString(m.breathBar.ViewAs(m.cycle.Progress()))
		b.WriteString("\n\n")
	}

	if m.askingAfterStress {
		b.WriteString(subtitleStyle.Render("How stressed are you now?"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("1-9 or 0 for ten · enter to skip"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Breathe in %ds · Hold %ds · Breathe out %ds",
		m.settings.BreatheIn, m.settings.BreatheHold, m.settings.BreatheOut,
	)))
	b.WriteString("\n")

	return b.String()
}

// phaseStyle picks the color of the breathing circle per phase.
func phaseStyle(phase breathing.Phase) lipgloss.Style {
	switch phase {
	case breathing.PhaseInhale:
		return inhaleStyle
	case breathing.PhaseHold:
		return holdStyle
	case breathing.PhaseExhale:
		return exhaleStyle
	}
	return idleStyle
}

// phaseLabel mirrors the circle with a short instruction.
func phaseLabel(phase breathing.Phase) string {
	switch phase {
	case breathing.PhaseInhale:
		return "Breathe in…"
	case breathing.PhaseHold:
		return "Hold…"
	case breathing.PhaseExhale:
		return "Breathe out…"
	}
	return "Press space to begin"
}

// breathCircle draws a filled circle scaled by radius in [0, 1].
// Cells are roughly twice as tall as wide, so x distances are halved
// to keep the circle round.
func breathCircle(radius float64) string {
	const maxRadius = 7.0
	r := radius * maxRadius

	var b strings.Builder
	for y := -int(maxRadius); y <= int(maxRadius); y++ {
		for x := -2 * int(maxRadius); x <= 2*int(maxRadius); x++ {
			dx := float64(x) / 2
			dy := float64(y)
			if math.Sqrt(dx*dx+dy*dy) <= r {
				b.WriteRune('█')
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewMusic() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Background Music"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Calming classical music for relaxation"))
	b.WriteString("\n\n")

	b.WriteString(m.nowPlayingLine())
	b.WriteString("\n\n")

	if len(m.tracks) == 0 {
		b.WriteString(dimStyle.Render("No music files found. Add audio files to one of:"))
		b.WriteString("\n")
		for _, dir := range m.catalog.Dirs() {
			b.WriteString(dimStyle.Render("  " + dir))
			b.WriteString("\n")
		}
		return b.String()
	}

	current, hasCurrent := m.player.CurrentTrack()
	for i, track := range m.tracks {
		marker := "  "
		if hasCurrent && track.ID == current.ID {
			marker = "♫ "
		}
		line := marker + track.DisplayName()
		if i == m.trackIndex {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Volume "))
	b.WriteString(m.volumeBar.ViewAs(m.player.Volume()))
	b.WriteString("\n")

	return b.String()
}

// nowPlayingLine describes the player state in one line.
func (m Model) nowPlayingLine() string {
	track, ok := m.player.CurrentTrack()
	if !ok {
		return dimStyle.Render("Nothing playing")
	}
	switch m.player.State() {
	case player.StatePaused:
		return subtitleStyle.Render("⏸ " + track.DisplayName())
	default:
		return successStyle.Render("♫ " + track.DisplayName())
	}
}

func (m Model) viewStrategies() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Calming Strategies"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Mark one as your favorite; the emergency screen will suggest it."))
	b.WriteString("\n\n")

	for i, s := range m.strategies {
		star := " "
		if m.settings.FavoriteStrategy == s.ID {
			star = "★"
		}
		line := fmt.Sprintf("%s %s %s", star, s.Icon, s.Name)
		if i == m.strategyIndex {
			b.WriteString(selectedStyle.Render("› " + line))
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("     " + s.Description))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewStress() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("How stressed are you right now?"))
	b.WriteString("\n\n")

	b.WriteString("   " + strategy.StressEmoji(m.stressLevel))
	b.WriteString("\n\n")

	filled := strings.Repeat("■", m.stressLevel)
	empty := strings.Repeat("□", strategy.MaxStress-m.stressLevel)
	b.WriteString(fmt.Sprintf("  %s%s  %d/%d %s\n",
		subtitleStyle.Render(filled), dimStyle.Render(empty),
		m.stressLevel, strategy.MaxStress, strategy.StressMark(m.stressLevel)))
	b.WriteString(dimStyle.Render("  1 Calm        5 Medium        10 Overload"))
	b.WriteString("\n\n")

	suggestion := strategy.Suggestion(m.stressLevel)
	width := lo.Clamp(m.width-4, 30, 70)
	b.WriteString(lipgloss.NewStyle().Width(width).Render(suggestion))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewSessions() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Recent Sessions"))
	b.WriteString("\n\n")

	if len(m.sessionLog) == 0 {
		b.WriteString(dimStyle.Render("No sessions yet. Finish a breathing exercise and it shows up here."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-16s  %-10s  %-8s  %s", "Date", "Type", "Length", "Stress")))
	b.WriteString("\n")

	shown := 0
	for i := len(m.sessionLog) - 1; i >= 0 && shown < maxSessionRows; i-- {
		sess := m.sessionLog[i]
		b.WriteString(fmt.Sprintf("  %-16s  %-10s  %-8s  %s\n",
			sess.Date, sess.Type, formatDuration(sess.DurationSeconds), formatStress(sess)))
		shown++
	}

	counts := lo.CountValuesBy(m.sessionLog, func(sess model.Session) string {
		return sess.Type
	})
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d total · %d breathing · %d emergency",
		len(m.sessionLog), counts[model.SessionBreathing], counts[model.SessionEmergency])))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewEmergency() string {
	var b strings.Builder

	body := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render(emergencyHeading),
		m.emergencyMessage(),
		dimStyle.Render("b: go to breathing · esc: close"))
	b.WriteString(emergencyBoxStyle.Render(body))
	b.WriteString("\n")

	return b.String()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "–"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// formatStress renders the before/after pair, leaving out what was
// not reported.
func formatStress(sess model.Session) string {
	switch {
	case sess.StressBefore > 0 && sess.StressAfter > 0:
		return fmt.Sprintf("%d → %d", sess.StressBefore, sess.StressAfter)
	case sess.StressBefore > 0:
		return fmt.Sprintf("%d", sess.StressBefore)
	default:
		return "–"
	}
}

func (m Model) helpText() string {
	if m.emergency {
		return "b: breathing • enter/esc: close"
	}
	if m.askingAfterStress {
		return "1-9, 0: rate • enter: skip"
	}
	switch m.page {
	case pageHome:
		return "1-5/enter: open • tab: next page • e: emergency • q: quit"
	case pageBreathe:
		return "space: start/stop • e: emergency • esc: home"
	case pageMusic:
		return "enter: play • space: pause • n: next • s: stop • +/-: volume • esc: home"
	case pageStrategies:
		return "enter: favorite • e: emergency • esc: home"
	case pageStress:
		return "1-9, 0: set level • b: breathe • esc: home"
	case pageSessions:
		return "r: reload • esc: home"
	}
	return ""
}
