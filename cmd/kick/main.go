package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/kick/audio"
	"github.com/lixenwraith/kick/logging"
	"github.com/lixenwraith/kick/preset"
	"github.com/lixenwraith/kick/viewer"
)

var (
	presetFlag  = flag.String("preset", "", "TOML preset to load")
	noteFlag    = flag.String("note", "C-2", "Note to play: A-4, C#3, 36, ...")
	voicesFlag  = flag.Int("voices", 0, "Active voices, 0 keeps the preset or default")
	secondsFlag = flag.Float64("seconds", 1.0, "Length of rendered or played audio")
	wavFlag     = flag.String("wav", "", "Write a 16-bit stereo WAV file")
	rawFlag     = flag.String("raw", "", "Write raw s16le stereo, - for stdout")
	pngFlag     = flag.String("png", "", "Write the envelope preview as PNG")
	scaleFlag   = flag.Int("scale", 4, "PNG upscale factor")
	playFlag    = flag.Bool("play", false, "Play through the audio device")
	backendFlag = flag.String("backend", "", "Playback backend: speaker or pipe")
	dumpFlag    = flag.String("dump", "", "Write the effective preset as TOML, - for stdout")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/kick.log")
)

func main() {
	flag.Parse()

	logFile := logging.Setup(*debugFlag, "kick")
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kick: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	cfg := audio.LoadAudioConfig()
	if *backendFlag != "" {
		cfg.Output = audio.OutputMode(*backendFlag)
	}

	var p *preset.Preset
	if *presetFlag != "" {
		var err error
		if p, err = preset.Load(*presetFlag); err != nil {
			return err
		}
		if p.SampleRate > 0 {
			cfg.SampleRate = p.SampleRate
		}
		log.Printf("Loaded preset %s: %d voices", *presetFlag, p.Voices)
	}

	note, err := audio.ParseNote(*noteFlag)
	if err != nil {
		return err
	}
	noteSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "note" {
			noteSet = true
		}
	})

	// Each output renders from a fresh kick so every one starts at the hit
	session := func() (*audio.Kick, *audio.Stream, error) {
		k := audio.NewKick()
		if p != nil {
			if err := p.Apply(k); err != nil {
				return nil, nil, err
			}
		}
		if *voicesFlag > 0 {
			k.SetActiveVoices(*voicesFlag)
		}
		if p == nil || noteSet {
			for i := 0; i < k.ActiveVoices(); i++ {
				k.Trigger(i, note)
			}
		}
		return k, audio.NewStream(k, cfg.SampleRate), nil
	}

	duration := time.Duration(*secondsFlag * float64(time.Second))

	if *pngFlag != "" {
		k, _, err := session()
		if err != nil {
			return err
		}
		if err := writeFile(*pngFlag, func(w io.Writer) error {
			return viewer.WritePNG(w, k.Preview(), *scaleFlag)
		}); err != nil {
			return err
		}
		log.Printf("Wrote preview %s", *pngFlag)
	}

	if *dumpFlag != "" {
		k, _, err := session()
		if err != nil {
			return err
		}
		if err := writeFile(*dumpFlag, preset.Capture(k).Encode); err != nil {
			return err
		}
	}

	if *wavFlag != "" {
		_, s, err := session()
		if err != nil {
			return err
		}
		f, err := os.Create(*wavFlag)
		if err != nil {
			return err
		}
		if err := audio.WriteWAV(f, s, duration, cfg.MasterVolume); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("Wrote %v of audio to %s", duration, *wavFlag)
	}

	if *rawFlag != "" {
		_, s, err := session()
		if err != nil {
			return err
		}
		frames := s.SampleRate().N(duration)
		if err := writeFile(*rawFlag, func(w io.Writer) error {
			return audio.WriteRaw(w, s, frames)
		}); err != nil {
			return err
		}
	}

	if *playFlag {
		_, s, err := session()
		if err != nil {
			return err
		}
		return play(s, cfg, duration)
	}

	return nil
}

// play streams s for d through the configured backend, falling back from
// the speaker to a CLI pipe
func play(s *audio.Stream, cfg *audio.AudioConfig, d time.Duration) error {
	if !cfg.Enabled {
		log.Printf("Audio disabled, skipping playback")
		return nil
	}

	if cfg.Output != audio.OutputPipe {
		player := audio.NewPlayer(s, cfg)
		err := player.Initialize()
		if err == nil {
			defer player.Cleanup()
			time.Sleep(d)
			return nil
		}
		log.Printf("Speaker initialization failed: %v (trying pipe backend)", err)
	}

	engine := audio.NewPipeEngine(s, cfg)
	if err := engine.Start(); err != nil {
		return err
	}
	defer engine.Stop()

	if engine.IsSilent() {
		return audio.ErrNoAudioBackend
	}
	log.Printf("Playing through %s", engine.Backend().Name)
	time.Sleep(d)
	return nil
}

// writeFile runs fn against path, or stdout for "-"
func writeFile(path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
