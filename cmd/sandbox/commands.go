package main

import (
	"flag"
	"strings"

	"game-sandbox/internal/commands"
	"game-sandbox/internal/debug"
	"game-sandbox/internal/logger"
	"game-sandbox/internal/scene"
	"game-sandbox/internal/settings"
)

// registerCommands wires the console commands to the live systems. Every
// settings write goes through the store's clamping setters, same as the
// panel, so console input cannot push a value out of range.
func registerCommands(reg *commands.Registry, log *logger.Logger, store *settings.Store, dbg *debug.Debug, scn *scene.Scene, inspectorOn *bool) {
	vsyncFS := flag.NewFlagSet("vsync", flag.ContinueOnError)
	vsyncOn := vsyncFS.Bool("on", false, "enable vsync")
	vsyncOff := vsyncFS.Bool("off", false, "disable vsync")
	reg.Register("vsync", vsyncFS, func() error {
		switch {
		case *vsyncOn:
			store.SetVsync(true)
		case *vsyncOff:
			store.SetVsync(false)
		}
		log.Logf("vsync: %v", store.Vsync())
		*vsyncOn, *vsyncOff = false, false
		return nil
	})

	groundFS := flag.NewFlagSet("ground", flag.ContinueOnError)
	groundX := groundFS.Float64("x", -1, "slab width")
	groundY := groundFS.Float64("y", -1, "slab thickness")
	groundZ := groundFS.Float64("z", -1, "slab depth")
	reg.Register("ground", groundFS, func() error {
		if *groundX >= 0 {
			store.SetGroundX(float32(*groundX))
		}
		if *groundY >= 0 {
			store.SetGroundY(float32(*groundY))
		}
		if *groundZ >= 0 {
			store.SetGroundZ(float32(*groundZ))
		}
		size := store.GroundSize()
		log.Logf("ground: %.1f x %.1f x %.1f", size[0], size[1], size[2])
		*groundX, *groundY, *groundZ = -1, -1, -1
		return nil
	})

	sensFS := flag.NewFlagSet("sensitivity", flag.ContinueOnError)
	sensV := sensFS.Float64("v", -1, "mouse sensitivity (0.1-1.0)")
	reg.Register("sensitivity", sensFS, func() error {
		if *sensV >= 0 {
			store.SetSensitivity(float32(*sensV))
		}
		log.Logf("sensitivity: %.2f", store.Sensitivity())
		*sensV = -1
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsOn := fpsFS.Bool("on", false, "show FPS overlay")
	fpsOff := fpsFS.Bool("off", false, "hide FPS overlay")
	reg.Register("fps", fpsFS, func() error {
		switch {
		case *fpsOn:
			dbg.SetShowFPS(true)
		case *fpsOff:
			dbg.SetShowFPS(false)
		}
		log.Logf("fps overlay: %v", dbg.ShowFPS)
		*fpsOn, *fpsOff = false, false
		return nil
	})

	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridOn := gridFS.Bool("on", false, "show grid")
	gridOff := gridFS.Bool("off", false, "hide grid")
	reg.Register("grid", gridFS, func() error {
		switch {
		case *gridOn:
			scn.SetGridVisible(true)
		case *gridOff:
			scn.SetGridVisible(false)
		}
		log.Logf("grid: %v", scn.GridVisible)
		*gridOn, *gridOff = false, false
		return nil
	})

	boundsFS := flag.NewFlagSet("bounds", flag.ContinueOnError)
	boundsOn := boundsFS.Bool("on", false, "show boundary wireframe")
	boundsOff := boundsFS.Bool("off", false, "hide boundary wireframe")
	reg.Register("bounds", boundsFS, func() error {
		switch {
		case *boundsOn:
			scn.BoundsVisible = true
		case *boundsOff:
			scn.BoundsVisible = false
		}
		log.Logf("boundary wireframe: %v", scn.BoundsVisible)
		*boundsOn, *boundsOff = false, false
		return nil
	})

	inspectFS := flag.NewFlagSet("inspector", flag.ContinueOnError)
	inspectOn := inspectFS.Bool("on", false, "show ball inspector")
	inspectOff := inspectFS.Bool("off", false, "hide ball inspector")
	reg.Register("inspector", inspectFS, func() error {
		switch {
		case *inspectOn:
			*inspectorOn = true
		case *inspectOff:
			*inspectorOn = false
		}
		log.Logf("inspector: %v", *inspectorOn)
		*inspectOn, *inspectOff = false, false
		return nil
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFS, func() error {
		log.Log("commands: cmd " + strings.Join(reg.Names(), " | cmd "))
		return nil
	})
}
