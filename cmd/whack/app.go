package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/core"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/input"
	"github.com/lixenwraith/whack/render"
	"github.com/lixenwraith/whack/render/renderers"
	"github.com/lixenwraith/whack/systems"
)

// app wires the screen, input, game systems and renderers around one game context
// Every method runs on the main loop goroutine
type app struct {
	screen  tcell.Screen
	ctx     *engine.GameContext
	clock   *engine.ClockScheduler
	round   *systems.RoundSystem
	input   *input.Machine
	display *render.RenderOrchestrator
}

// newApp builds the game around an initialized screen, a nil player disables sound
func newApp(screen tcell.Screen, ctx *engine.GameContext, player systems.SoundPlayer) *app {
	a := &app{
		screen:  screen,
		ctx:     ctx,
		clock:   engine.NewClockScheduler(ctx),
		round:   systems.NewRoundSystem(ctx),
		input:   input.NewMachine(),
		display: render.NewRenderOrchestrator(screen),
	}

	a.clock.RegisterEventHandler(systems.NewAudioSystem(ctx, player))
	renderers.RegisterAll(a.display)

	a.round.LoadHighScore()
	return a
}

// layout returns the hole layout for the current screen size
func (a *app) layout() render.Layout {
	w, h := a.display.Size()
	return render.NewLayout(w, h)
}

// handleEvent applies one terminal event, false when the player quits
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.input.Process(ev, a.layout())
	if intent == nil {
		return true
	}

	// Fire due timers first so a strike never lands on a mole that already expired
	a.clock.Update()

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		w, h := a.screen.Size()
		a.display.Resize(w, h)
	case input.IntentStart:
		a.round.StartRound()
	case input.IntentPause:
		a.round.TogglePause()
	case input.IntentMute:
		muted := !a.ctx.IsMuted.Load()
		a.ctx.IsMuted.Store(muted)
		log.Printf("sound muted=%t", muted)
	case input.IntentWhack:
		a.round.Whack(intent.Hole)
	}

	a.clock.DispatchEventsImmediately()
	return true
}

// update advances timers to the current game time
func (a *app) update() {
	a.clock.Update()
}

// draw renders one frame
func (a *app) draw() {
	a.ctx.IncrementFrameNumber()
	w, h := a.display.Size()
	a.display.RenderFrame(render.NewRenderContext(a.ctx, w, h))
}

// run is the main loop: input, game update and frame tickers on a single goroutine
func (a *app) run() {
	events := make(chan tcell.Event, constants.InputChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	gameTicker := time.NewTicker(constants.GameUpdateInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-gameTicker.C:
			a.update()
		case <-frameTicker.C:
			a.draw()
		}
	}
}
