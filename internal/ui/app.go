// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/jeranaias/termraster/internal/config"
	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/raster"
	"github.com/jeranaias/termraster/internal/termcaps"
)

// =============================================================================
// Application model
// =============================================================================

// Rows reserved for the header and the help footer.
const chromeRows = 2

type tickMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration into the running
// program, typically from the config file watcher.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Model is the Bubble Tea model for the demo application.
type Model struct {
	version string
	session string

	cfg      config.Config
	caps     termcaps.Caps
	viewCaps termcaps.Caps
	profile  termenv.Profile
	backend  raster.Rasterizer

	canvas *gfx.Canvas
	scene  *Scene
	frame  string

	keys KeyMap
	help help.Model

	paused bool
	errMsg string
}

// NewModel builds the demo model from a validated configuration. Terminal
// capabilities are detected once here and refreshed on every window resize.
func NewModel(cfg config.Config, version string) Model {
	m := Model{
		version: version,
		session: uuid.NewString()[:8],
		cfg:     cfg,
		caps:    applyCapsOverrides(termcaps.Detect(), cfg),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.rebuild()
	return m
}

// Init starts the animation ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks, resizes, key presses, and config reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Backend):
			m.cfg.Backend = nextBackend(m.cfg.Backend)
			m.rebuild()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		caps := termcaps.Detect()
		if msg.Width > 0 {
			caps.Cols = msg.Width
		}
		if msg.Height > 0 {
			caps.Rows = msg.Height
		}
		m.caps = applyCapsOverrides(caps, m.cfg)
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.caps = applyCapsOverrides(termcaps.Detect(), m.cfg)
		m.rebuild()
		return m, nil

	case tickMsg:
		if !m.paused {
			m.scene.Advance()
		}
		m.scene.Render(m.canvas)
		out, err := m.backend.Rasterize(m.canvas, m.viewCaps)
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
			m.frame = RenderOutput(out, m.profile)
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the header, the current frame, and the help footer.
func (m Model) View() string {
	var sb strings.Builder

	title := titleStyle.Render("termraster " + m.version)
	status := statusStyle.Render(fmt.Sprintf(
		" %s · %s · %s · %dx%d · %s",
		m.backend.Name(), m.caps.Unicode, m.caps.Depth,
		m.canvas.Width(), m.canvas.Height(), m.session,
	))
	sb.WriteString(title)
	sb.WriteString(status)
	if m.paused {
		sb.WriteString(pausedStyle.Render("  [paused]"))
	}
	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render("  " + m.errMsg))
	}
	sb.WriteByte('\n')

	sb.WriteString(m.frame)
	sb.WriteByte('\n')

	sb.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

func (m *Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps < config.MinFPS {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// rebuild resizes the canvas and reselects the backend after anything that
// changes the capability profile or the forced backend.
func (m *Model) rebuild() {
	m.profile = ProfileFor(m.caps.Depth)
	m.backend = selectBackend(m.cfg, m.caps)

	rows := m.caps.Rows - chromeRows
	if rows < 1 {
		rows = 1
	}
	// The rasterizer grid covers only the frame area between the chrome rows.
	m.viewCaps = m.caps
	m.viewCaps.Rows = rows

	mx, my := m.backend.ResolutionMultiplier()
	w, h := m.caps.Cols*mx, rows*my

	switch {
	case m.canvas == nil:
		m.canvas = gfx.NewWithBackground(w, h, m.cfg.BackgroundColor())
		m.scene = NewScene(w, h)
	case m.canvas.Width() != w || m.canvas.Height() != h:
		m.canvas = m.canvas.Resize(w, h)
		m.scene.Resize(w, h)
	}
}

// =============================================================================
// Backend selection
// =============================================================================

func selectBackend(cfg config.Config, caps termcaps.Caps) raster.Rasterizer {
	switch cfg.Backend {
	case config.BackendKitty:
		return raster.NewKitty(caps.CellWidth, caps.CellHeight)
	case config.BackendHalfBlock:
		return raster.NewHalfBlock()
	default:
		return raster.Select(caps)
	}
}

func nextBackend(current string) string {
	switch current {
	case config.BackendAuto:
		return config.BackendKitty
	case config.BackendKitty:
		return config.BackendHalfBlock
	default:
		return config.BackendAuto
	}
}

// applyCapsOverrides layers explicit configuration on top of a detected
// capability profile.
func applyCapsOverrides(caps termcaps.Caps, cfg config.Config) termcaps.Caps {
	if cfg.AsciiOnly {
		caps.Unicode = termcaps.UnicodeAscii
	}
	if cfg.CellWidth > 0 {
		caps.CellWidth = cfg.CellWidth
	}
	if cfg.CellHeight > 0 {
		caps.CellHeight = cfg.CellHeight
	}
	return caps
}
