package coffee

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaxCupName is how many columns of the client's name fit on a cup.
const MaxCupName = 9

const cupInterior = 13

// Markers that identify the finishing in rendered art.
const (
	SugarMarker = "[#]"
	BlownMarker = "~>"
)

type drinkArt struct {
	topping []string
	fill    string
}

var drinkArts = map[Kind]drinkArt{
	Tea: {
		topping: []string{
			"          _|_",
			"          |T|",
		},
		fill: "~~~~~~~~~~~~~",
	},
	Capuccino: {
		topping: []string{
			"     .-'''''''-.",
		},
		fill: "@@@@@@@@@@@@@",
	},
	Espresso: {
		fill: "#############",
	},
	Latte: {
		topping: []string{
			"       .-. .-.",
			"        '. .'",
		},
		fill: "=============",
	},
	Afogatto: {
		topping: []string{
			"       .-\"\"\"-.",
			"      (vanilla)",
		},
		fill: "ooooooooooooo",
	},
}

var (
	risingSteam = []string{
		"      (   )  )",
		"       )  (  (",
		"      (   )  )",
	}
	blownSteam = []string{
		" (o3o)  ~  ~  ~ " + BlownMarker,
		"        ~  ~  ~ " + BlownMarker,
	}
)

// RenderArt draws a drink of the given kind and variant with client's name written on
// the cup. It is a pure function of its arguments. Unknown kinds render as "".
func RenderArt(kind Kind, v Variant, client string) string {
	a, ok := drinkArts[kind]
	if !ok {
		return ""
	}

	var lines []string
	if v.IsBlown() {
		lines = append(lines, blownSteam...)
	} else {
		lines = append(lines, risingSteam...)
	}
	lines = append(lines, a.topping...)

	body := strings.Repeat(" ", cupInterior)
	saucer := " \\_______________/"
	if v.HasSugar() {
		body = "  * . * . *  "
		saucer += " " + SugarMarker + SugarMarker
	}

	lines = append(lines,
		"  .-------------.",
		"  |"+a.fill+"|__",
		"  |"+body+"|  \\",
		"  |"+CupName(client)+"|  |",
		"  |             |__/",
		"  '-------------'",
		saucer,
	)
	return strings.Join(lines, "\n")
}

// CupName fits client onto the cup: trimmed, cut to MaxCupName columns and centered in
// the cup's interior.
func CupName(client string) string {
	name := runewidth.Truncate(strings.TrimSpace(client), MaxCupName, "")
	pad := cupInterior - runewidth.StringWidth(name)
	left := pad / 2
	return strings.Repeat(" ", left) + name + strings.Repeat(" ", pad-left)
}
