// Package breathing runs the guided breathing sessions: fixed scripts of lines, each
// followed by a pause.
package breathing

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/pace"
	"github.com/keracoffee/kera/internal/tracing"
	"github.com/keracoffee/kera/internal/ui/styles"
)

// Step is one printed line and the pause after it.
type Step struct {
	Text  string
	Delay time.Duration
}

// Script is an ordered breathing session.
type Script struct {
	Name  string
	Steps []Step
}

const (
	focusDelay = 2 * time.Second
	relaxDelay = 3 * time.Second
)

func steps(delay time.Duration, lines ...string) []Step {
	out := make([]Step, len(lines))
	for i, line := range lines {
		out[i] = Step{Text: line, Delay: delay}
	}
	return out
}

var count = []string{"1...", "2...", "3...", "4..."}

func withCount(line string) []string {
	return append([]string{line}, count...)
}

var (
	focusScript = Script{
		Name: "focus",
		Steps: steps(focusDelay, concat(
			withCount("Inhale, through your nose, focusing only on your breathing, counting 4 seconds..."),
			withCount("Now exhale, through your nose, for another 4 seconds..."),
			withCount("Inhale again through your nose."),
			withCount("Now exhale once more for 4 seconds"),
			[]string{"Now you can focus better on your tasks!"},
		)...),
	}

	relaxScript = Script{
		Name: "relax",
		Steps: steps(relaxDelay,
			"Sit in a comfortable position.",
			"Imagine the air is filled with peace.",
			"Inhale and feel that the air is spreading throughout your body, like positive energy.",
			"Exhale and imagine that the air leaves, taking away all the tension.",
			"Inhale again through your nose.",
			"Now exhale once more.",
			"I hope you feel relaxed :)",
		),
	}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Focus returns the focus script.
func Focus() Script {
	return clone(focusScript)
}

// Relax returns the relax script.
func Relax() Script {
	return clone(relaxScript)
}

func clone(s Script) Script {
	s.Steps = append([]Step(nil), s.Steps...)
	return s
}

// Choose picks the script for the given flags. Focus wins when both are set; with
// neither set one script is picked uniformly at random from rng.
func Choose(focus, relax bool, rng *rand.Rand) Script {
	switch {
	case focus:
		return Focus()
	case relax:
		return Relax()
	case rng.IntN(2) == 0:
		return Focus()
	default:
		return Relax()
	}
}

// Guide prints scripts to an output stream.
type Guide struct {
	out   io.Writer
	pacer pace.Pacer
	rng   *rand.Rand
}

// NewGuide creates a Guide. A nil rng is seeded from the runtime's random source.
func NewGuide(out io.Writer, pacer pace.Pacer, rng *rand.Rand) *Guide {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Guide{out: out, pacer: pacer, rng: rng}
}

// Session chooses a script for the flags and runs it, returning the script's name.
func (g *Guide) Session(ctx context.Context, focus, relax bool) (string, error) {
	script := Choose(focus, relax, g.rng)
	log.Debug(log.CatBreathe, "Starting session", "script", script.Name, "focus", focus, "relax", relax)
	return script.Name, g.Run(ctx, script)
}

// Run prints every step of script in order, pausing after each one. It stops early
// only when ctx ends.
func (g *Guide) Run(ctx context.Context, script Script) (err error) {
	ctx, span := tracing.Tracer().Start(ctx, "breathe.session", trace.WithAttributes(
		attribute.String("breathe.script", script.Name),
		attribute.Int("breathe.steps", len(script.Steps)),
	))
	defer func() {
		tracing.Fail(span, err)
		span.End()
	}()

	for i, step := range script.Steps {
		span.AddEvent("step", trace.WithAttributes(attribute.Int("breathe.step", i+1)))
		if _, err := fmt.Fprintln(g.out, styles.NarrativeStyle.Render(step.Text)); err != nil {
			return fmt.Errorf("writing %s script: %w", script.Name, err)
		}
		if err := g.pacer.Pause(ctx, step.Delay); err != nil {
			return err
		}
	}
	return nil
}
