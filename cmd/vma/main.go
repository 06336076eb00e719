// Package main is the entry point for the vma demo form.
//
// It presents the configured numeric fields in a terminal and routes every
// keystroke and paste through the admission dispatcher, so the form behaves
// like a set of number inputs with max attributes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/vdelcros/vma/config"
	"github.com/vdelcros/vma/dispatch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	watch       bool
	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "vma.toml", "path to the configuration file")
	flag.BoolVar(&opts.watch, "watch", false, "reload the form when the configuration changes")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("vma %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnablePaste()

	d := dispatch.New(dispatch.WithClipboard(dispatch.SystemClipboard{}))
	app := newApp(screen, d)
	app.applyConfig(cfg)

	if opts.watch {
		w, werr := config.Watch(opts.configPath)
		if werr != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Error: watching configuration: %v\n", werr)
			return 1
		}
		defer func() { _ = w.Close() }()
		go forwardReloads(screen, w)
	}

	app.loop()
	return 0
}

// forwardReloads posts fresh configurations into the event loop.
func forwardReloads(screen tcell.Screen, w *config.Watcher) {
	for cfg := range w.Configs() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(cfg))
	}
}
