package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/keracoffee/kera/internal/log"
)

// Player starts playback of an audio file.
type Player interface {
	Play(path string) (Playback, error)
}

// Playback is a running track.
type Playback interface {
	// Done receives the player's exit result once, when the track ends or is stopped.
	Done() <-chan error

	// Stop ends playback. Stopping a finished playback is not an error.
	Stop() error
}

// candidates lists player commands per OS, in preference order.
func candidates(goos string) [][]string {
	if goos == "darwin" {
		return [][]string{{"afplay"}}
	}
	if goos == "windows" {
		return nil
	}
	return [][]string{
		{"mpg123", "-q"},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
		{"mpv", "--no-video", "--really-quiet"},
	}
}

// CommandPlayer plays files by running an external command with the file appended.
type CommandPlayer struct {
	argv []string
}

// NewCommandPlayer returns a player running argv plus the track path.
func NewCommandPlayer(argv ...string) *CommandPlayer {
	return &CommandPlayer{argv: argv}
}

// Argv returns the command line without the track path.
func (p *CommandPlayer) Argv() []string {
	return append([]string(nil), p.argv...)
}

// DetectPlayer returns the override command when set, otherwise the first candidate
// for the running OS that lookPath finds.
func DetectPlayer(override string, lookPath func(string) (string, error)) (*CommandPlayer, error) {
	if fields := strings.Fields(override); len(fields) > 0 {
		return NewCommandPlayer(fields...), nil
	}
	for _, argv := range candidates(runtime.GOOS) {
		if _, err := lookPath(argv[0]); err == nil {
			log.Debug(log.CatMusic, "Detected player", "command", argv[0])
			return NewCommandPlayer(argv...), nil
		}
	}
	return nil, ErrNoPlayer
}

// Play implements Player.
func (p *CommandPlayer) Play(path string) (Playback, error) {
	if len(p.argv) == 0 {
		return nil, ErrNoPlayer
	}
	args := append(p.argv[1:len(p.argv):len(p.argv)], path)
	cmd := exec.Command(p.argv[0], args...) //nolint:gosec // G204: player command is user configuration
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", p.argv[0], err)
	}
	log.Debug(log.CatMusic, "Player started", "command", p.argv[0], "pid", cmd.Process.Pid, "path", path)

	pb := &processPlayback{cmd: cmd, done: make(chan error, 1)}
	go pb.wait()
	return pb, nil
}

type processPlayback struct {
	cmd      *exec.Cmd
	done     chan error
	stopOnce sync.Once
	stopErr  error
}

func (pb *processPlayback) wait() {
	err := pb.cmd.Wait()
	log.Debug(log.CatMusic, "Player exited", "error", err)
	pb.done <- err
	close(pb.done)
}

func (pb *processPlayback) Done() <-chan error {
	return pb.done
}

func (pb *processPlayback) Stop() error {
	pb.stopOnce.Do(func() {
		if err := pb.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			pb.stopErr = fmt.Errorf("stopping player: %w", err)
		}
	})
	return pb.stopErr
}

// Jukebox plays tracks from a library.
type Jukebox struct {
	library *Library
	player  Player
}

// NewJukebox pairs a library with a player. A nil player makes every Start fail with
// ErrNoPlayer.
func NewJukebox(library *Library, player Player) *Jukebox {
	return &Jukebox{library: library, player: player}
}

// Start resolves track id and starts playing it. Failures are *PlaybackError.
func (j *Jukebox) Start(id int) (Playback, error) {
	name := AssetName(id)
	path, err := j.library.Resolve(id)
	if err != nil {
		return nil, &PlaybackError{Track: name, Err: err}
	}
	if j.player == nil {
		return nil, &PlaybackError{Track: name, Err: ErrNoPlayer}
	}
	pb, err := j.player.Play(path)
	if err != nil {
		return nil, &PlaybackError{Track: name, Err: err}
	}
	return pb, nil
}
