// Package sound provides the shop's music: the bundled track list and cross-platform
// playback via OS-native audio commands.
package sound

import (
	"fmt"
	"strings"
)

// Track numbers accepted by the music command.
const (
	MinTrack = 1
	MaxTrack = 4
)

// Track is one bundled song.
type Track struct {
	ID    int
	Title string
	Mood  string
}

// Asset returns the file name the track is bundled under.
func (t Track) Asset() string {
	return AssetName(t.ID)
}

var tracks = [...]Track{
	{ID: 1, Title: "Morning Brew", Mood: "lo-fi beats to start the day"},
	{ID: 2, Title: "Rain on the Window", Mood: "soft piano and rain"},
	{ID: 3, Title: "Corner Table Jazz", Mood: "slow jazz for reading"},
	{ID: 4, Title: "Last Espresso", Mood: "late night acoustic"},
}

// InvalidTrack is printed for track numbers outside the playlist.
var InvalidTrack = fmt.Sprintf("That isn't a valid music number. Please choose a number between %d and %d", MinTrack, MaxTrack)

// Banner is printed once playback starts.
const Banner = `Enjoy your music!
Don't forget to turn up the volume or use headphones for better experience.`

// ValidTrack reports whether id is on the playlist.
func ValidTrack(id int) bool {
	return id >= MinTrack && id <= MaxTrack
}

// AssetName returns the bundled file name for a track number, e.g. "music2.mp3".
func AssetName(id int) string {
	return fmt.Sprintf("music%d.mp3", id)
}

// LookupTrack returns the track for a number.
func LookupTrack(id int) (Track, bool) {
	if !ValidTrack(id) {
		return Track{}, false
	}
	return tracks[id-MinTrack], true
}

// Tracks returns the playlist in order.
func Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks[:])
	return out
}

// PlaylistText renders the playlist, one track per line.
func PlaylistText() string {
	var b strings.Builder
	for _, t := range tracks {
		fmt.Fprintf(&b, "%d - %s (%s)\n", t.ID, t.Title, t.Mood)
	}
	b.WriteString("\nPlay with: kera music <number>")
	return b.String()
}
