// Package barista serves orders: it narrates the preparation of a drink with fixed
// pauses between lines and finishes it the way the client asked.
package barista

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/log"
	"github.com/keracoffee/kera/internal/orders/domain"
	"github.com/keracoffee/kera/internal/pace"
	"github.com/keracoffee/kera/internal/tracing"
	"github.com/keracoffee/kera/internal/ui/styles"
)

// Pauses between the stages of an order.
const (
	GreetingPause = 3 * time.Second
	WaitressPause = 3 * time.Second
	BrewPause     = 4 * time.Second
	ArtPause      = 3 * time.Second
)

// Order is one request at the counter.
type Order struct {
	Number int
	Client string
	Sugar  bool
	Blow   bool
}

// Barista prints orders to an output stream.
type Barista struct {
	out      io.Writer
	pacer    pace.Pacer
	receipts domain.Repository
	now      func() time.Time
}

// Option configures a Barista.
type Option func(*Barista)

// WithJournal records a receipt for every served order.
func WithJournal(repo domain.Repository) Option {
	return func(b *Barista) {
		b.receipts = repo
	}
}

// WithNow overrides the clock used to timestamp receipts.
func WithNow(now func() time.Time) Option {
	return func(b *Barista) {
		b.now = now
	}
}

// New creates a Barista writing to out and pausing with pacer.
func New(out io.Writer, pacer pace.Pacer, opts ...Option) *Barista {
	b := &Barista{
		out:   out,
		pacer: pacer,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Serve prepares an order. Order numbers outside the menu print a notice and return
// nil. The only error is the context's, when it ends during a pause.
func (b *Barista) Serve(ctx context.Context, order Order) (err error) {
	ctx, span := tracing.Tracer().Start(ctx, "order.serve", trace.WithAttributes(
		attribute.Int("order.number", order.Number),
		attribute.Bool("order.sugar", order.Sugar),
		attribute.Bool("order.blow", order.Blow),
	))
	defer func() {
		tracing.Fail(span, err)
		span.End()
	}()

	entry, ok := coffee.Lookup(order.Number)
	if !ok {
		log.Debug(log.CatOrder, "Rejected order", "number", order.Number)
		span.SetAttributes(attribute.Bool("order.rejected", true))
		b.println(styles.WarningStyle.Render(coffee.InvalidOrder))
		return nil
	}
	span.SetAttributes(attribute.String("order.drink", entry.Name()))

	variant := coffee.VariantFor(order.Sugar, order.Blow)
	log.Debug(log.CatOrder, "Serving order", "drink", entry.Name(), "client", order.Client, "variant", variant.String())

	stages := []struct {
		name  string
		text  string
		pause time.Duration
	}{
		{"greeting", styles.NarrativeStyle.Render(coffee.Greeting(order.Client, entry)), GreetingPause},
		{"waitress", styles.RenderLines(styles.NarrativeStyle, coffee.Waitress), WaitressPause},
		{"brew", styles.RenderLines(styles.StepStyle, entry.BrewSteps), BrewPause},
		{"art", styles.RenderLines(styles.ArtStyle, entry.Art(coffee.Plain, order.Client)) + "\n", ArtPause},
	}
	for _, stage := range stages {
		if err := b.stage(ctx, stage.name, stage.text, stage.pause); err != nil {
			return err
		}
	}

	if variant != coffee.Plain {
		b.println(styles.NarrativeStyle.Render(variant.Announcement()))
		b.println("")
		b.println(styles.RenderLines(styles.ArtStyle, entry.Art(variant, order.Client)))
	}
	b.println(styles.TitleStyle.Render(coffee.Farewell))

	b.record(ctx, entry, order)
	return nil
}

// stage prints text and pauses, as one span.
func (b *Barista) stage(ctx context.Context, name, text string, pause time.Duration) error {
	ctx, span := tracing.Tracer().Start(ctx, "order."+name)
	defer span.End()

	b.println(text)
	err := b.pacer.Pause(ctx, pause)
	tracing.Fail(span, err)
	return err
}

func (b *Barista) record(ctx context.Context, entry coffee.MenuEntry, order Order) {
	if b.receipts == nil {
		return
	}
	_, span := tracing.Tracer().Start(ctx, "journal.save")
	defer span.End()

	receipt := domain.NewReceipt(order.Client, entry.ID, entry.Name(), order.Sugar, order.Blow, b.now())
	if err := b.receipts.Save(receipt); err != nil {
		tracing.Fail(span, err)
		log.ErrorErr(log.CatOrder, "Failed to record receipt", err, "drink", entry.Name())
		return
	}
	span.SetAttributes(attribute.String("receipt.guid", receipt.GUID()))
	log.Debug(log.CatOrder, "Recorded receipt", "guid", receipt.GUID())
}

func (b *Barista) println(s string) {
	_, _ = fmt.Fprintln(b.out, s)
}
