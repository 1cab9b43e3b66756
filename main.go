// termraster - A terminal graphics engine with an animated demo.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termraster/internal/config"
	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/raster"
	"github.com/jeranaias/termraster/internal/termcaps"
	"github.com/jeranaias/termraster/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion bool
		once        bool
		backend     string
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v":
			showVersion = true
		case "--once":
			once = true
		case "--backend":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --backend requires a value (auto|kitty|halfblock)")
				os.Exit(1)
			}
			i++
			backend = args[i]
		case "--help", "-h":
			usage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", args[i])
			usage()
			os.Exit(1)
		}
	}

	if showVersion {
		fmt.Printf("termraster %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	if backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if once {
		if err := renderOnce(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.NewModel(cfg, Version), tea.WithAltScreen())

	// Hot-reload the config file while the demo runs.
	if path, err := config.Path(); err == nil {
		w, werr := config.NewWatcher(path, func(c config.Config) {
			p.Send(ui.ConfigReloadedMsg{Config: c})
		})
		if werr == nil {
			_ = w.Watch()
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderOnce draws a single demo frame and writes it to stdout. Useful for
// piping a frame to a file or checking what the detection picked without
// entering the alternate screen.
func renderOnce(cfg config.Config) error {
	caps := termcaps.Detect()

	var backend raster.Rasterizer
	switch cfg.Backend {
	case config.BackendKitty:
		backend = raster.NewKitty(caps.CellWidth, caps.CellHeight)
	case config.BackendHalfBlock:
		backend = raster.NewHalfBlock()
	default:
		backend = raster.Select(caps)
	}

	mx, my := backend.ResolutionMultiplier()
	w, h := caps.Cols*mx, caps.Rows*my
	canvas := gfx.NewWithBackground(w, h, cfg.BackgroundColor())

	scene := ui.NewScene(w, h)
	scene.Advance()
	scene.Render(canvas)

	out, err := backend.Rasterize(canvas, caps)
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, ui.RenderOutput(out, ui.ProfileFor(caps.Depth)))
	return err
}

func usage() {
	fmt.Println(`termraster - terminal graphics engine demo

Usage:
  termraster [flags]

Flags:
  --backend <auto|kitty|halfblock>  force a rendering backend
  --once                            render a single frame and exit
  --version, -v                     print version information
  --help, -h                        show this help`)
}
