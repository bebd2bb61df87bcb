package main

import "flag"

// Command-line flags. Values given here take precedence over the JSON
// configuration document.
var (
	// configFlag names a JSON file or an http(s) URL.
	configFlag = flag.String("config", "", "configuration document (file path or http(s) URL)")

	widthFlag  = flag.Int("width", 0, "canvas width override (0 keeps the configured value)")
	heightFlag = flag.Int("height", 0, "canvas height override (0 keeps the configured value)")

	// seedFlag drives auto-seeded wave placement and the noise overlay.
	seedFlag = flag.Int64("seed", 1, "random seed for wave placement and noise")

	workersFlag = flag.Int("workers", 0, "render goroutines (0 uses every CPU)")

	// debugFlag enables the overlay, timeline and debug hotkeys.
	debugFlag = flag.Bool("debug", false, "show debug overlay, timeline and hotkeys")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn, error, none")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")

	exportDirFlag = flag.String("export-dir", ".", "directory for frames exported with E")

	// enableAudioFlag streams the field value at the canvas centre.
	enableAudioFlag = flag.Bool("enable-audio", false, "sonify the field value at the canvas centre")

	// snapshotFlag renders one frame without opening a window.
	snapshotFlag = flag.String("snapshot", "", "write a PNG of the frame at -at seconds and exit")
	atFlag       = flag.Float64("at", 5, "simulation time for -snapshot")
)
