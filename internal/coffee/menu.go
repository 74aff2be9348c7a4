// Package coffee holds the shop's static data: the drink menu, the ASCII art for each
// drink and the canned narrative lines.
package coffee

import (
	"fmt"
	"strings"
)

// Order numbers accepted by the shop.
const (
	MinOrder = 1
	MaxOrder = 5
)

// Kind identifies a drink on the menu.
type Kind int

const (
	Tea Kind = iota + 1
	Capuccino
	Espresso
	Latte
	Afogatto
)

// String returns the drink's menu name.
func (k Kind) String() string {
	switch k {
	case Tea:
		return "Tea"
	case Capuccino:
		return "Capuccino"
	case Espresso:
		return "Espresso"
	case Latte:
		return "Latte"
	case Afogatto:
		return "Afogatto"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MenuEntry describes one orderable drink.
type MenuEntry struct {
	ID          int
	Kind        Kind
	Description string
	BrewSteps   string
}

// Name returns the drink's menu name.
func (e MenuEntry) Name() string {
	return e.Kind.String()
}

// Art renders the drink in the given variant with client's name on the cup.
func (e MenuEntry) Art(v Variant, client string) string {
	return RenderArt(e.Kind, v, client)
}

var menu = [...]MenuEntry{
	{
		ID:          1,
		Kind:        Tea,
		Description: "You asked for a Tea. Good Choice!",
		BrewSteps: strings.Join([]string{
			"Heating the water...",
			"Putting a bag of camomile leaves in the hot water...",
			"Wait for it...",
			"It's ready!",
		}, "\n"),
	},
	{
		ID:          2,
		Kind:        Capuccino,
		Description: "You asked for a Capuccino. You will love it!",
		BrewSteps: strings.Join([]string{
			"Heating the water...",
			"Adding coffee...",
			"Adding and mixing steamed milk...",
			"And just a bit of cinnamon...",
			"Have a good time ;D",
		}, "\n"),
	},
	{
		ID:          3,
		Kind:        Espresso,
		Description: "You asked for an Espresso. That's our speciality!",
		BrewSteps: strings.Join([]string{
			"Heating the water...",
			"And diluting dark coffee...",
			"Enjoy it <3",
		}, "\n"),
	},
	{
		ID:          4,
		Kind:        Latte,
		Description: "You asked for a Latte. That's a classic!",
		BrewSteps: strings.Join([]string{
			"Heating the milk...",
			"And diluting dark coffee...",
			"Careful, it's hot :o",
		}, "\n"),
	},
	{
		ID:          5,
		Kind:        Afogatto,
		Description: "You asked for an Afogatto. Personally, that's my favorite!",
		BrewSteps: strings.Join([]string{
			"Taking the espresso that you already know...",
			"And adding our delicious vanilla gelato...",
			"Hope you like it ><",
		}, "\n"),
	},
}

// ValidOrder reports whether id is on the menu.
func ValidOrder(id int) bool {
	return id >= MinOrder && id <= MaxOrder
}

// Lookup returns the menu entry for an order number.
func Lookup(id int) (MenuEntry, bool) {
	if !ValidOrder(id) {
		return MenuEntry{}, false
	}
	return menu[id-MinOrder], true
}

// Entries returns the whole menu in order-number order.
func Entries() []MenuEntry {
	out := make([]MenuEntry, len(menu))
	copy(out, menu[:])
	return out
}
