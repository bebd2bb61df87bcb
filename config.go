package main

import "time"

// Window, tooling and audio constants for the interactive driver. Everything
// that shapes the field itself lives in the JSON configuration instead.
const (
	windowTitle          = "Pulse Field"
	defaultTPS           = 60.0
	maxFrameDelta        = 0.25
	scrubStep            = 0.1
	scrubShiftMultiplier = 10
	playbackRateStep     = 0.25
	minPlaybackRate      = 0.25
	maxPlaybackRate      = 4.0
	markerRadius         = 4
	timelineHeight       = 10
	timelineMargin       = 6
	snapshotStep         = 1.0 / defaultTPS
	configLoadTimeout    = 10 * time.Second

	audioSampleRate          = 48000
	audioPlayerBufferLatency = 80 * time.Millisecond
	pcm16MaxValue            = 32767
)
