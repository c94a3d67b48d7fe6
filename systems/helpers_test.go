package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
	"github.com/lixenwraith/whack/grid"
	"github.com/lixenwraith/whack/highscore"
)

// fixedRand returns values from seq in order, wrapping around
type fixedRand struct {
	seq []int
	i   int
}

func (r *fixedRand) Intn(n int) int {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

// eventRecorder collects every routed event
type eventRecorder struct {
	events []events.GameEvent
}

func (r *eventRecorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRoundStarted,
		events.EventRoundEnded,
		events.EventMoleSpawned,
		events.EventMoleExpired,
		events.EventMoleStruck,
		events.EventComboFlash,
		events.EventNewHighScore,
		events.EventPauseChanged,
	}
}

func (r *eventRecorder) HandleEvent(ev events.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) ofType(t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// recordingPlayer collects played sounds
type recordingPlayer struct {
	played []audio.SoundType
}

func (p *recordingPlayer) Play(st audio.SoundType) {
	p.played = append(p.played, st)
}

// testGame bundles a context driven by a mock clock
type testGame struct {
	t     *testing.T
	ctx   *engine.GameContext
	mock  *engine.MockTimeProvider
	cs    *engine.ClockScheduler
	round *RoundSystem
	rec   *eventRecorder
	store *highscore.MemoryStore
}

func newTestGame(t *testing.T, rng engine.Rand) *testGame {
	t.Helper()
	return newTestGameWithStore(t, rng, highscore.NewMemoryStore())
}

func newTestGameWithStore(t *testing.T, rng engine.Rand, store *highscore.MemoryStore) *testGame {
	t.Helper()
	if rng == nil {
		rng = &fixedRand{}
	}
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(engine.NewPausableClock(mock), rng, store)
	cs := engine.NewClockScheduler(ctx)
	rec := &eventRecorder{}
	cs.RegisterEventHandler(rec)

	return &testGame{
		t:     t,
		ctx:   ctx,
		mock:  mock,
		cs:    cs,
		round: NewRoundSystem(ctx),
		rec:   rec,
		store: store,
	}
}

// advance moves time forward in main loop sized steps, updating after each
func (g *testGame) advance(d time.Duration) {
	step := constants.GameUpdateInterval
	for d > 0 {
		if d < step {
			step = d
		}
		g.mock.Advance(step)
		g.cs.Update()
		d -= step
	}
}

// whack strikes a hole and dispatches the resulting events like the main loop does
func (g *testGame) whack(id int) bool {
	ok := g.round.Whack(id)
	g.cs.DispatchEventsImmediately()
	return ok
}

// firstActive returns the lowest active hole or -1
func (g *testGame) firstActive() int {
	snap := g.ctx.Grid.Snapshot()
	for i, s := range snap {
		if s == grid.HoleActive {
			return i
		}
	}
	return -1
}

// waitForActive advances until a mole is up
func (g *testGame) waitForActive() int {
	g.t.Helper()
	for i := 0; i < 200; i++ {
		if id := g.firstActive(); id >= 0 {
			return id
		}
		g.advance(constants.GameUpdateInterval)
	}
	g.t.Fatal("No mole became active")
	return -1
}
