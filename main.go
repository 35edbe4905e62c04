package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"pomodoro_tui/internal"
	"pomodoro_tui/internal/alert"
	"pomodoro_tui/internal/config"
	"pomodoro_tui/internal/ticker"
	"pomodoro_tui/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup happens before exit.
func run() int {
	cfgPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "pomodoro")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("config loaded from %s", cfgPath)

	var sink alert.Sink = alert.Nop{}
	var spk *alert.Speaker
	if !cfg.Alert.Disabled {
		spk, err = alert.Open(cfg.Alert.Sound, alertSettings(cfg))
		if err != nil {
			log.Printf("audio unavailable, alerts disabled: %v", err)
		} else {
			sink = spk
		}
	}

	ticks := ticker.New(timer.TickInterval, nil)
	m := internal.NewModel(timer.New(timer.SystemClock), sink, ticks)
	defer m.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	ticks.SetFunc(func(gen uint64) {
		p.Send(internal.MsgTick{Gen: gen})
	})

	if spk != nil {
		w, err := config.Watch(cfgPath, func(c *config.Config) {
			spk.Apply(alertSettings(c))
		})
		if err != nil {
			log.Printf("config hot reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}

func alertSettings(c *config.Config) alert.Settings {
	return alert.Settings{
		Volume: c.Alert.Volume,
		Muted:  c.Alert.Muted,
	}
}
