package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kick/audio"
	"github.com/lixenwraith/kick/logging"
	"github.com/lixenwraith/kick/preset"
	"github.com/lixenwraith/kick/viewer"
)

var (
	presetFlag = flag.String("preset", "", "TOML preset to load")
	saveFlag   = flag.String("save", "", "Write the edited preset here on exit")
	noteFlag   = flag.String("note", "C-2", "Note played by space")
	voicesFlag = flag.Int("voices", 0, "Active voices, 0 keeps the preset or default")
	muteFlag   = flag.Bool("mute", false, "Edit without audio output")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/kick-preview.log")
)

func main() {
	flag.Parse()

	logFile := logging.Setup(*debugFlag, "kick-preview")
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := audio.LoadAudioConfig()
	k := audio.NewKick()

	if *presetFlag != "" {
		p, err := preset.Load(*presetFlag)
		if err == nil {
			if p.SampleRate > 0 {
				cfg.SampleRate = p.SampleRate
			}
			err = p.Apply(k)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "kick-preview: %v\n", err)
			os.Exit(1)
		}
	}
	if *voicesFlag > 0 {
		k.SetActiveVoices(*voicesFlag)
	}

	note, err := audio.ParseNote(*noteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kick-preview: %v\n", err)
		os.Exit(1)
	}

	stream := audio.NewStream(k, cfg.SampleRate)
	if !*muteFlag && cfg.Enabled {
		stop := startAudio(stream, cfg)
		defer stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKICK-PREVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	viewer.New(screen, stream, note).Run()
	screen.Fini()

	if *saveFlag != "" {
		var p *preset.Preset
		stream.Update(func(k *audio.Kick) { p = preset.Capture(k) })
		if err := p.Save(*saveFlag); err != nil {
			fmt.Fprintf(os.Stderr, "kick-preview: %v\n", err)
			os.Exit(1)
		}
	}
}

// startAudio opens the speaker, or a CLI pipe when the speaker is unavailable.
// Failure leaves the editor silent.
func startAudio(s *audio.Stream, cfg *audio.AudioConfig) func() {
	if cfg.Output != audio.OutputPipe {
		player := audio.NewPlayer(s, cfg)
		err := player.Initialize()
		if err == nil {
			return player.Cleanup
		}
		log.Printf("Speaker initialization failed: %v (trying pipe backend)", err)
	}

	engine := audio.NewPipeEngine(s, cfg)
	if err := engine.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
		return func() {}
	}
	if engine.IsSilent() {
		log.Printf("No audio backend found (continuing without audio)")
	}
	return engine.Stop
}
