package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/core"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/highscore"
	"github.com/lixenwraith/whack/render"
	"github.com/lixenwraith/whack/systems"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(opts.Debug); logFile != nil {
		defer logFile.Close()
	}

	store, closeStore := openStore(opts.DBPath)
	defer closeStore()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.SetStyle(render.DefaultStyle)
	screen.EnableMouse()
	screen.HideCursor()

	var player systems.SoundPlayer
	if sound := startAudio(); sound != nil {
		defer sound.Cleanup()
		player = sound
	}

	ctx := engine.NewGameContext(engine.NewPausableClock(nil), engine.NewRand(opts.Seed), store)
	ctx.IsMuted.Store(opts.Mute)

	newApp(screen, ctx, player).run()
}

// openStore opens the SQLite high score store, falling back to memory when path is empty or unusable
func openStore(path string) (highscore.Store, func()) {
	if path == "" {
		return highscore.NewMemoryStore(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
	defer cancel()

	store, err := highscore.OpenSQLite(ctx, path)
	if err != nil {
		log.Printf("high score store %s unavailable, using memory: %v", path, err)
		return highscore.NewMemoryStore(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Printf("high score store close: %v", err)
		}
	}
}

// startAudio opens the speaker, nil when audio is disabled or no device exists
func startAudio() *audio.SoundManager {
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
		return nil
	}
	return sound
}
