package barista

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"pgregory.net/rapid"

	"github.com/keracoffee/kera/internal/coffee"
	"github.com/keracoffee/kera/internal/orders/domain"
	"github.com/keracoffee/kera/internal/pace"
	"github.com/keracoffee/kera/internal/tracing"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Save(receipt *domain.Receipt) error {
	return m.Called(receipt).Error(0)
}

func (m *mockRepository) FindByGUID(guid string) (*domain.Receipt, error) {
	args := m.Called(guid)
	r, _ := args.Get(0).(*domain.Receipt)
	return r, args.Error(1)
}

func (m *mockRepository) Recent(limit int) ([]*domain.Receipt, error) {
	args := m.Called(limit)
	r, _ := args.Get(0).([]*domain.Receipt)
	return r, args.Error(1)
}

func (m *mockRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func serve(t *testing.T, order Order, opts ...Option) (string, *pace.Recorder) {
	t.Helper()
	var out bytes.Buffer
	pacer := &pace.Recorder{}
	err := New(&out, pacer, opts...).Serve(context.Background(), order)
	require.NoError(t, err)
	return ansi.Strip(out.String()), pacer
}

func expectedPrefix(entry coffee.MenuEntry, client string) string {
	return coffee.Greeting(client, entry) + "\n" +
		coffee.Waitress + "\n" +
		entry.BrewSteps + "\n" +
		entry.Art(coffee.Plain, client) + "\n\n"
}

func TestServe_PlainOrder(t *testing.T) {
	out, pacer := serve(t, Order{Number: 1, Client: "Gabi"})

	entry, _ := coffee.Lookup(1)
	assert.Equal(t, expectedPrefix(entry, "Gabi")+coffee.Farewell+"\n", out)
	assert.Equal(t, []time.Duration{
		3 * time.Second, 3 * time.Second, 4 * time.Second, 3 * time.Second,
	}, pacer.Pauses())
}

func TestServe_FlagBranches(t *testing.T) {
	tests := []struct {
		name    string
		sugar   bool
		blow    bool
		variant coffee.Variant
		message string
	}{
		{"sugar and blow", true, true, coffee.SugarAndBlown, "Adding sugar and blowing your drink"},
		{"sugar only", true, false, coffee.Sugar, "Adding sugar to your drink"},
		{"blow only", false, true, coffee.Blown, "Blowing your drink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := serve(t, Order{Number: 4, Client: "client", Sugar: tt.sugar, Blow: tt.blow})

			entry, _ := coffee.Lookup(4)
			want := expectedPrefix(entry, "client") +
				tt.message + "\n\n" +
				entry.Art(tt.variant, "client") + "\n" +
				coffee.Farewell + "\n"
			assert.Equal(t, want, out)

			// Exactly one finishing branch fires.
			for _, other := range []coffee.Variant{coffee.Sugar, coffee.Blown, coffee.SugarAndBlown} {
				if other != tt.variant {
					assert.NotContains(t, out, entry.Art(other, "client"))
				}
			}
		})
	}
}

func TestServe_NoFlagsPrintsNoExtraArt(t *testing.T) {
	out, _ := serve(t, Order{Number: 2, Client: "client"})

	assert.NotContains(t, out, coffee.SugarMarker)
	assert.NotContains(t, out, coffee.BlownMarker)
	assert.NotContains(t, out, "Adding sugar")
	assert.NotContains(t, out, "Blowing")
}

func TestProperty_OutOfRangeOrdersOnlyPrintNotice(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		number := rapid.OneOf(
			rapid.IntMax(coffee.MinOrder-1),
			rapid.IntMin(coffee.MaxOrder+1),
		).Draw(rt, "number")
		sugar := rapid.Bool().Draw(rt, "sugar")
		blow := rapid.Bool().Draw(rt, "blow")

		repo := &mockRepository{}
		var out bytes.Buffer
		pacer := &pace.Recorder{}

		err := New(&out, pacer, WithJournal(repo)).Serve(context.Background(),
			Order{Number: number, Client: "client", Sugar: sugar, Blow: blow})

		if err != nil {
			rt.Fatalf("Serve(%d) returned error: %v", number, err)
		}
		if got := ansi.Strip(out.String()); got != coffee.InvalidOrder+"\n" {
			rt.Fatalf("Serve(%d) printed %q", number, got)
		}
		if len(pacer.Pauses()) != 0 {
			rt.Fatalf("Serve(%d) paused %d times", number, len(pacer.Pauses()))
		}
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestProperty_InRangeOrdersMatchTable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		number := rapid.IntRange(coffee.MinOrder, coffee.MaxOrder).Draw(rt, "number")
		client := rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(rt, "client")
		sugar := rapid.Bool().Draw(rt, "sugar")
		blow := rapid.Bool().Draw(rt, "blow")

		var out bytes.Buffer
		err := New(&out, &pace.Recorder{}).Serve(context.Background(),
			Order{Number: number, Client: client, Sugar: sugar, Blow: blow})
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		entry, _ := coffee.Lookup(number)
		got := ansi.Strip(out.String())
		if !strings.HasPrefix(got, expectedPrefix(entry, client)) {
			rt.Fatalf("order %d output does not start with the table entry", number)
		}
		if !strings.HasSuffix(got, coffee.Farewell+"\n") {
			rt.Fatalf("order %d output does not end with the farewell", number)
		}
	})
}

func TestServe_RecordsReceipt(t *testing.T) {
	served := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	repo := &mockRepository{}
	repo.On("Save", mock.MatchedBy(func(r *domain.Receipt) bool {
		return r.Client() == "Gabi" && r.DrinkID() == 5 && r.Drink() == "Afogatto" &&
			r.Sugar() && !r.Blow() && r.ServedAt().Equal(served)
	})).Return(nil).Once()

	serve(t, Order{Number: 5, Client: "Gabi", Sugar: true},
		WithJournal(repo), WithNow(func() time.Time { return served }))

	repo.AssertExpectations(t)
}

func TestServe_JournalFailureDoesNotFailOrder(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Save", mock.Anything).Return(errors.New("disk full")).Once()

	out, _ := serve(t, Order{Number: 3, Client: "client"}, WithJournal(repo))

	assert.True(t, strings.HasSuffix(out, coffee.Farewell+"\n"))
	repo.AssertExpectations(t)
}

func TestServe_CancelledDuringPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockRepository{}
	var out bytes.Buffer
	err := New(&out, &pace.Recorder{}, WithJournal(repo)).Serve(ctx, Order{Number: 1, Client: "client"})

	require.ErrorIs(t, err, context.Canceled)
	entry, _ := coffee.Lookup(1)
	assert.Equal(t, coffee.Greeting("client", entry)+"\n", ansi.Strip(out.String()),
		"only the greeting is printed before the first pause")
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

// recordSpans installs an in-memory span exporter for the test.
func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	otel.SetTracerProvider(tracing.NewProvider(exp))
	t.Cleanup(func() { _ = tracing.Shutdown(context.Background()) })
	return exp
}

func spanNames(spans tracetest.SpanStubs) []string {
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}
	return names
}

func TestServe_Spans(t *testing.T) {
	exp := recordSpans(t)
	repo := &mockRepository{}
	repo.On("Save", mock.Anything).Return(nil)

	serve(t, Order{Number: 2, Client: "Gabi", Blow: true}, WithJournal(repo))

	spans := exp.GetSpans()
	assert.Equal(t, []string{
		"order.greeting", "order.waitress", "order.brew", "order.art", "journal.save", "order.serve",
	}, spanNames(spans))

	root := spans[len(spans)-1]
	for _, child := range spans[:len(spans)-1] {
		assert.Equal(t, root.SpanContext.SpanID(), child.Parent.SpanID(), "%s parent", child.Name)
	}
	assert.Contains(t, root.Attributes, attribute.String("order.drink", "Capuccino"))
	assert.Contains(t, root.Attributes, attribute.Bool("order.blow", true))
}

func TestServe_RejectedOrderSpan(t *testing.T) {
	exp := recordSpans(t)

	serve(t, Order{Number: 7, Client: "Gabi"})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes, attribute.Bool("order.rejected", true))
}

func TestServe_CancelledSpanFails(t *testing.T) {
	exp := recordSpans(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(&bytes.Buffer{}, &pace.Recorder{}).Serve(ctx, Order{Number: 1, Client: "client"})
	require.ErrorIs(t, err, context.Canceled)

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "order.greeting", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}
