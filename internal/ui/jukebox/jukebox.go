// Package jukebox provides the now-playing view shown while a track plays. The view
// holds the terminal until the user presses q.
package jukebox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/sound"
	"github.com/keracoffee/kera/internal/ui/styles"
)

// TrackEndedMsg is delivered when the player process exits on its own.
type TrackEndedMsg struct {
	Err error
}

// Model holds the jukebox view state.
type Model struct {
	track    sound.Track
	playback sound.Playback
	spinner  spinner.Model
	ended    bool
	endErr   error
	stopped  bool
	width    int
}

// New creates a view for a track that is already playing.
func New(track sound.Track, playback sound.Playback) Model {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(styles.MintColor)
	return Model{
		track:    track,
		playback: playback,
		spinner:  s,
	}
}

// Init starts the spinner and waits for the track to end.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEnd(m.playback))
}

func waitForEnd(pb sound.Playback) tea.Cmd {
	if pb == nil {
		return nil
	}
	return func() tea.Msg {
		return TrackEndedMsg{Err: <-pb.Done()}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopped = true
			return m, tea.Quit
		}

	case TrackEndedMsg:
		// The track is over but the shop stays open until the user leaves.
		m.ended = true
		m.endErr = msg.Err
		log.Debug(log.CatUI, "Track ended", "track", m.track.Asset(), "error", msg.Err)

	case spinner.TickMsg:
		if m.ended {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the now-playing line and the quit hint.
func (m Model) View() string {
	if m.stopped {
		return styles.MutedStyle.Render("Music stopped. Come back soon!") + "\n"
	}

	var line string
	title := fmt.Sprintf("%d - %s", m.track.ID, m.track.Title)
	switch {
	case m.ended && m.endErr != nil:
		line = styles.WarningStyle.Render("♪ " + title + " stopped: " + m.endErr.Error())
	case m.ended:
		line = styles.TitleStyle.Render("♪ " + title + " finished")
	default:
		line = m.spinner.View() + " " + styles.TitleStyle.Render("Now playing "+title)
	}
	if m.width > 0 {
		line = styles.TruncateString(line, m.width)
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("Press q to stop"))
	b.WriteString("\n")
	return b.String()
}

// Stopped reports whether the user asked to stop.
func (m Model) Stopped() bool {
	return m.stopped
}

// Ended reports whether the track finished on its own.
func (m Model) Ended() bool {
	return m.ended
}

// Run shows the view until the user quits or ctx ends.
func Run(ctx context.Context, in io.Reader, out io.Writer, track sound.Track, playback sound.Playback) error {
	p := tea.NewProgram(New(track, playback),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		log.Debug(log.CatUI, "Jukebox interrupted", "track", track.Asset())
		return nil
	}
	if m, ok := final.(Model); ok {
		log.Debug(log.CatUI, "Jukebox closed", "track", track.Asset(), "stopped", m.Stopped(), "ended", m.Ended())
	}
	return err
}
