package coffee

import (
	"fmt"
	"strings"
)

// Waitress is printed while the order is taken.
const Waitress = `      .-"""-.
     / .===. \      "One moment, I'll let the barista know!"
     \/ 6 6 \/
     ( \___/ )
 ___ooo__V__ooo___`

// Farewell closes every served order.
const Farewell = "Thank for visiting Kera Coffee Shop, it was a pleasure to meet you :) Come back soon!"

// InvalidOrder is printed for order numbers outside the menu.
var InvalidOrder = fmt.Sprintf("That isn't a valid order. Please choose a number between %d and %d", MinOrder, MaxOrder)

// Home is the banner printed when kera runs without a subcommand.
const Home = `            (  )   (   )  )
             ) (   )  (  (
             ( )  (    ) )
             _____________
            <_____________> ___
            |             |/ _ \
            |  K E R A    | | | |
            |   coffee    |_| | |
         ___|    shop     |\___/
        /    \___________/    \
        \_____________________/

  Welcome to Kera Coffee Shop! Take a seat and relax.

  kera menu              see what we are brewing today
  kera order 2 Gabi -s   order a drink (add -s for sugar, -b to blow it)
  kera breathe           take a guided breathing break
  kera playlist          see the tracks we have on
  kera music 1           play a track while you work`

// Greeting is the first thing the barista says when serving an order.
func Greeting(client string, e MenuEntry) string {
	return fmt.Sprintf("Hi, %s %s", client, e.Description)
}

// MenuText renders the catalogue, one drink per line.
func MenuText() string {
	var b strings.Builder
	for i, e := range Entries() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d - %s", e.ID, e.Name())
	}
	b.WriteString("\n\nOrder with: kera order <number> [name] [--sugar] [--blow]")
	return b.String()
}

// About is the shop's long description, written as markdown.
const About = `# Kera Coffee Shop

This program simulates the atmosphere of a relaxing coffee shop illustrated by
ASCII art, allowing you to place a custom order, add sugar or blow it. You can also
listen to relaxing music and run a guided breathing session.

With a chill narrative, the shop aims to make the terminal a more pleasant place,
providing a refreshing break from its potentially stressful use.

## What you can do

- ` + "`kera menu`" + ` shows the drinks we serve
- ` + "`kera order <number> [name] [--sugar] [--blow]`" + ` places an order
- ` + "`kera breathe [--focus] [--relax]`" + ` runs a guided breathing session
- ` + "`kera playlist`" + ` lists the tracks
- ` + "`kera music <number>`" + ` plays a track until you press q
- ` + "`kera history`" + ` shows the orders you have been served
`
