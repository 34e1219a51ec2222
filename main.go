// chip8 runs CHIP-8 programs in an SDL window, a terminal UI or headless.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"chip8/logger"
	"chip8/screen"
	"chip8/system"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	ui     string
	scale  int
	ticks  int
	frames int

	trace bool
	debug bool
	quiet bool
}

func main() {
	options, romPath := readArguments()
	logg := logger.New(options.debug, options.quiet)

	if !options.quiet {
		printBanner()
	}

	if err := run(logg, options, romPath); err != nil {
		logg.Fatal("emulation failed", log.Err(err))
	}
}

func readArguments() (optionFlags, string) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.ui, "ui", "sdl", "front end: sdl, tui or none")
	flags.IntVar(&options.scale, "scale", 10, "window pixel scale for the sdl front end")
	flags.IntVar(&options.ticks, "ticks", system.DefaultTicksPerFrame, "instruction ticks per frame")
	flags.IntVar(&options.frames, "frames", 0, "with -ui none, stop after this many frames (0 = run until fault)")
	flags.BoolVar(&options.trace, "trace", false, "record recently executed instructions")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner()
		fmt.Printf("usage: chip8 [options] <rom file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}

	return options, args[0]
}

func printBanner() {
	fmt.Println("[--------------------------]")
	fmt.Println("[ chip8 - CHIP-8 emulator  ]")
	fmt.Printf("[--------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(logg *log.Logger, options optionFlags, romPath string) error {
	scr, err := newScreen(options)
	if err != nil {
		return err
	}
	defer scr.Close()

	sys := system.New(scr, logg, options.ticks)
	if options.trace {
		sys.VM.EnableTrace(16)
	}
	if err := sys.LoadROM(romPath); err != nil {
		return err
	}

	if options.ui == "none" && options.frames > 0 {
		return sys.RunFrames(options.frames)
	}
	return sys.Run(app.Context())
}

func newScreen(options optionFlags) (screen.Screen, error) {
	switch options.ui {
	case "sdl":
		return screen.NewSDL(int32(options.scale))
	case "tui":
		return screen.NewTUI()
	case "none":
		return screen.NewHeadless(), nil
	default:
		return nil, fmt.Errorf("unknown front end %q", options.ui)
	}
}
