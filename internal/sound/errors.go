package sound

import (
	"errors"
	"fmt"
)

// ErrNoPlayer means no audio player command could be found.
var ErrNoPlayer = errors.New("no audio player found (install mpg123, ffplay or mpv, or set music.player)")

// ErrTrackMissing means the track's asset is not in the track directory.
var ErrTrackMissing = errors.New("track file not found")

// PlaybackError reports a track that could not be played.
type PlaybackError struct {
	Track string
	Err   error
}

// Error implements the error interface.
func (e *PlaybackError) Error() string {
	return fmt.Sprintf("cannot play %s: %v", e.Track, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PlaybackError) Unwrap() error {
	return e.Err
}
