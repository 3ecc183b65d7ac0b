// Package tui provides the Bubble Tea terminal user interface for lugn.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/yeager/lugn/internal/breathing"
	"github.com/yeager/lugn/internal/catalog"
	"github.com/yeager/lugn/internal/config"
	"github.com/yeager/lugn/internal/model"
	"github.com/yeager/lugn/internal/player"
	"github.com/yeager/lugn/internal/session"
	"github.com/yeager/lugn/internal/speech"
	"github.com/yeager/lugn/internal/strategy"
)

// pollInterval is how often the UI re-renders to pick up player state
// changes that happen outside the update loop.
const pollInterval = 500 * time.Millisecond

// Texts for the emergency overlay.
const (
	emergencyHeading  = "You are safe 💙"
	emergencyFallback = "Try this: Take 5 deep breaths. Count each one. You are safe."
	emergencyPhrase   = "You are safe. Take a deep breath."
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BD5CA")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BD5CA")).
			Padding(0, 1)

	emergencyBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FF6B6B")).
				Padding(1, 3)

	inhaleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BD5CA"))
	holdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))
	exhaleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8B5E8"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// page identifies one of the app's screens.
type page int

const (
	pageHome page = iota
	pageBreathe
	pageMusic
	pageStrategies
	pageStress
	pageSessions
	pageCount
)

// title returns the tab label for the page.
func (p page) title() string {
	switch p {
	case pageHome:
		return "Home"
	case pageBreathe:
		return "Breathe"
	case pageMusic:
		return "Music"
	case pageStrategies:
		return "Strategies"
	case pageStress:
		return "Feeling"
	case pageSessions:
		return "Sessions"
	}
	return ""
}

// homeItems is where the Home menu entries lead, in display order.
var homeItems = []page{pageBreathe, pageMusic, pageStrategies, pageStress, pageSessions}

// App bundles everything the UI works with.
type App struct {
	Settings     *config.Settings
	SettingsPath string
	Sessions     *session.Store
	Catalog      *catalog.Catalog
	Player       *player.Player
	Speaker      *speech.Speaker
	Logger       *zap.Logger
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	page      page
	emergency bool

	settings     *config.Settings
	settingsPath string
	sessions     *session.Store
	catalog      *catalog.Catalog
	player       *player.Player
	speaker      *speech.Speaker
	logger       *zap.Logger
	watcher      *catalog.Watcher

	// Breathing
	cycle        *breathing.Cycle
	breathBar    progress.Model
	breatheStart time.Time
	stressBefore int

	// Stress prompt shown after a breathing session ends.
	askingAfterStress bool
	pendingDuration   time.Duration

	// Music
	tracks     []model.Track
	trackIndex int
	volumeBar  progress.Model

	// Strategies
	strategies    []model.Strategy
	strategyIndex int

	// Stress picker
	stressLevel int

	// Sessions page
	sessionLog []model.Session

	homeIndex int

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates the TUI model around an App.
func NewModel(app App) Model {
	logger := app.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	breathBar := progress.New(progress.WithGradient("#8BD5CA", "#A8B5E8"))
	breathBar.Width = 40

	volumeBar := progress.New(progress.WithSolidFill("#8BD5CA"))
	volumeBar.Width = 24

	return Model{
		page:         pageHome,
		settings:     app.Settings,
		settingsPath: app.SettingsPath,
		sessions:     app.Sessions,
		catalog:      app.Catalog,
		player:       app.Player,
		speaker:      app.Speaker,
		logger:       logger,
		cycle:        breathing.NewCycle(),
		breathBar:    breathBar,
		volumeBar:    volumeBar,
		tracks:       app.Catalog.Tracks(),
		strategies:   strategy.All(),
		stressLevel:  strategy.DefaultStress,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollTick(), m.waitForLibraryChange())
}

// Message types
type (
	// breatheTickMsg advances the breathing cycle.
	breatheTickMsg time.Time

	// pollTickMsg re-renders so player state stays fresh.
	pollTickMsg struct{}

	// libraryChangedMsg is sent when files in a music directory change.
	libraryChangedMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.breathBar.Width = lo.Clamp(msg.Width-24, 20, 48)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case breatheTickMsg:
		if !m.cycle.Running() {
			return m, nil
		}
		m.cycle.Tick(time.Time(msg))
		if m.cycle.Running() {
			return m, m.breatheTick()
		}
		return m, nil

	case pollTickMsg:
		return m, m.pollTick()

	case libraryChangedMsg:
		m.reloadTracks()
		return m, m.waitForLibraryChange()
	}

	return m, nil
}

// handleKey routes a key press: global keys first, then the emergency
// overlay and the after-exercise prompt, then the current page.
func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.emergency {
		return m.updateEmergency(key)
	}
	if m.askingAfterStress {
		return m.updateAfterStress(key)
	}

	switch key {
	case "e":
		return m.openEmergency()
	case "tab":
		return m.enterPage((m.page + 1) % pageCount), nil
	case "shift+tab":
		return m.enterPage((m.page + pageCount - 1) % pageCount), nil
	case "esc":
		if m.page == pageHome {
			return m, tea.Quit
		}
		return m.enterPage(pageHome), nil
	}

	switch m.page {
	case pageHome:
		return m.updateHome(key)
	case pageBreathe:
		return m.updateBreathe(key)
	case pageMusic:
		return m.updateMusic(key)
	case pageStrategies:
		return m.updateStrategies(key)
	case pageStress:
		return m.updateStress(key)
	case pageSessions:
		return m.updateSessions(key)
	}
	return m, nil
}

// enterPage switches pages, refreshing page data and clearing the
// status line.
func (m Model) enterPage(p page) Model {
	m.page = p
	m.status = ""
	m.statusErr = false
	if p == pageSessions {
		m.sessionLog = m.sessions.All()
	}
	return m
}

func (m Model) updateHome(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.homeIndex > 0 {
			m.homeIndex--
		}
	case "down", "j":
		if m.homeIndex < len(homeItems)-1 {
			m.homeIndex++
		}
	case "enter":
		return m.enterPage(homeItems[m.homeIndex]), nil
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if idx < len(homeItems) {
			return m.enterPage(homeItems[idx]), nil
		}
	}
	return m, nil
}

func (m Model) updateBreathe(key string) (tea.Model, tea.Cmd) {
	switch key {
	case " ", "enter":
		if m.cycle.Running() {
			return m.finishBreathing()
		}
		in, hold, out := m.settings.Durations()
		m.cycle.Start(in, hold, out, time.Now())
		m.breatheStart = time.Now()
		m.stressBefore = m.stressLevel
		m.status = ""
		return m, m.breatheTick()
	case "s":
		if m.cycle.Running() {
			return m.finishBreathing()
		}
	}
	return m, nil
}

// finishBreathing stops the exercise and asks how the user feels
// before recording the session.
func (m Model) finishBreathing() (tea.Model, tea.Cmd) {
	m.pendingDuration = time.Since(m.breatheStart)
	m.cycle.Stop()
	m.askingAfterStress = true
	return m, nil
}

func (m Model) updateAfterStress(key string) (tea.Model, tea.Cmd) {
	after := -1
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		after = int(key[0] - '0')
	case "0":
		after = strategy.MaxStress
	case "enter", "esc", " ":
		after = 0 // not reported
	}
	if after < 0 {
		return m, nil
	}

	m.askingAfterStress = false
	m.recordSession(model.SessionBreathing, m.pendingDuration, m.stressBefore, after)
	if !m.statusErr {
		m.status = "Nice work. Session saved."
	}
	return m, nil
}

func (m Model) updateMusic(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.trackIndex > 0 {
			m.trackIndex--
		}
	case "down", "j":
		if m.trackIndex < len(m.tracks)-1 {
			m.trackIndex++
		}
	case "enter":
		if len(m.tracks) == 0 {
			return m, nil
		}
		track := m.tracks[m.trackIndex]
		if !m.player.Play(track.ID) {
			m.setError("Could not play " + track.Title)
		} else {
			m.status = ""
		}
	case " ":
		m.player.Toggle()
	case "n":
		m.player.PlayNext()
	case "s":
		m.player.Stop()
	case "+", "=", "right":
		m.player.SetVolume(m.player.Volume() + 0.05)
	case "-", "_", "left":
		m.player.SetVolume(m.player.Volume() - 0.05)
	}
	return m, nil
}

func (m Model) updateStrategies(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.strategyIndex > 0 {
			m.strategyIndex--
		}
	case "down", "j":
		if m.strategyIndex < len(m.strategies)-1 {
			m.strategyIndex++
		}
	case "enter", "f":
		if len(m.strategies) == 0 {
			return m, nil
		}
		chosen := m.strategies[m.strategyIndex]
		if m.settings.FavoriteStrategy == chosen.ID {
			m.settings.FavoriteStrategy = ""
			m.status = "Favorite cleared."
		} else {
			m.settings.FavoriteStrategy = chosen.ID
			m.status = "Favorite: " + chosen.Name
		}
		if err := m.settings.Save(m.settingsPath); err != nil {
			m.logger.Error("failed to save settings", zap.Error(err))
			m.setError("Could not save settings")
		}
	}
	return m, nil
}

func (m Model) updateStress(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.stressLevel = int(key[0] - '0')
	case "0":
		m.stressLevel = strategy.MaxStress
	case "left", "down", "-":
		m.stressLevel = lo.Clamp(m.stressLevel-1, strategy.MinStress, strategy.MaxStress)
	case "right", "up", "+":
		m.stressLevel = lo.Clamp(m.stressLevel+1, strategy.MinStress, strategy.MaxStress)
	case "b":
		return m.enterPage(pageBreathe), nil
	}
	return m, nil
}

func (m Model) updateSessions(key string) (tea.Model, tea.Cmd) {
	if key == "r" {
		m.sessionLog = m.sessions.All()
		m.status = "Reloaded."
	}
	return m, nil
}

// openEmergency shows the overlay, notifies the desktop and speaks a
// calming phrase. None of it may fail loudly.
func (m Model) openEmergency() (tea.Model, tea.Cmd) {
	m.emergency = true

	if err := beeep.Notify(emergencyHeading, m.emergencyMessage(), ""); err != nil {
		m.logger.Debug("desktop notification failed", zap.Error(err))
	}
	if m.settings.SoundEnabled {
		m.speaker.Say(emergencyPhrase)
	}
	m.logger.Info("emergency flow opened")
	return m, nil
}

func (m Model) updateEmergency(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "b":
		// Straight into a breathing exercise.
		m.emergency = false
		m.recordSession(model.SessionEmergency, 0, m.stressLevel, 0)
		m = m.enterPage(pageBreathe)
		if !m.cycle.Running() {
			return m.updateBreathe(" ")
		}
		return m, nil
	case "enter", "esc", " ", "q":
		m.emergency = false
		m.recordSession(model.SessionEmergency, 0, m.stressLevel, 0)
		return m, nil
	}
	return m, nil
}

// emergencyMessage picks the favorite strategy when one is set and a
// grounding exercise otherwise.
func (m Model) emergencyMessage() string {
	if fav := m.settings.FavoriteStrategy; fav != "" {
		return "Your favorite strategy: " + strategy.DisplayName(fav)
	}
	return emergencyFallback
}

func (m *Model) recordSession(sessionType string, duration time.Duration, before, after int) {
	sess := model.NewSession(sessionType, int(duration.Seconds()), before, after, time.Now())
	if err := m.sessions.Add(sess); err != nil {
		m.logger.Error("failed to record session", zap.Error(err))
		m.setError("Could not save session")
	}
}

// reloadTracks refreshes the track list after the music directories
// change, keeping the cursor in range.
func (m *Model) reloadTracks() {
	m.tracks = m.catalog.Tracks()
	if m.trackIndex >= len(m.tracks) {
		m.trackIndex = len(m.tracks) - 1
	}
	if m.trackIndex < 0 {
		m.trackIndex = 0
	}
	m.logger.Debug("track list reloaded", zap.Int("tracks", len(m.tracks)))
}

func (m *Model) setError(status string) {
	m.status = status
	m.statusErr = true
}

// breatheTick drives the breathing cycle while it runs.
func (m Model) breatheTick() tea.Cmd {
	return tea.Tick(breathing.TickInterval, func(t time.Time) tea.Msg {
		return breatheTickMsg(t)
	})
}

// pollTick keeps the view fresh for state that changes on its own,
// like playback stopping after a stream error.
func (m Model) pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// waitForLibraryChange blocks on the next music directory event.
func (m Model) waitForLibraryChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return libraryChangedMsg{}
		}
		return nil
	}
}

// Run starts the TUI application and blocks until it exits.
func Run(app App) error {
	m := NewModel(app)

	watcher, err := app.Catalog.Watch()
	if err != nil {
		m.logger.Debug("music directory watch unavailable", zap.Error(err))
	} else {
		m.watcher = watcher
		defer watcher.Close()
	}
	defer app.Player.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
