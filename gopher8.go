// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
	"golang.org/x/term"
)

// the frequency of the tone recorded with the -wav flag when the SDL display
// is not being used.
const defaultToneFreq = 440.0

// exit codes.
const (
	exitArguments = 10
	exitMode      = 20
)

// errors in the command line arguments are distinguished from other errors
// so that a different exit code can be used.
const usageError = "%v (try -help)"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the debugger uses interrupts to halt the RUN command.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				// a failed creator may return a non-nil interface holding a
				// nil pointer so gui is set to nil explicitly
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")
	md.AdditionalHelp("usage: gopher8 [RUN|DEBUG|DISASM|PERFORMANCE] [flags] <rom>")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitArguments}
		return
	}

	switch md.Mode() {
	case "RUN":
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		err = run(md, sync, interrupt)
		signal.Stop(interrupt)
	case "DEBUG":
		err = debug(md, sync)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, usageError) {
			sync.state <- stateRequest{req: reqQuit, args: exitArguments}
		} else {
			sync.state <- stateRequest{req: reqQuit, args: exitMode}
		}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// parse the arguments for the mode. returns false if the mode should not
// continue, in which case the error should be checked.
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(usageError, err)
	}
	return true, nil
}

// romArgument returns the loader for the single remaining argument of the
// mode.
func romArgument(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, curated.Errorf(usageError, fmt.Sprintf("rom required for %s mode", md))
	case 1:
		return romloader.NewLoader(md.GetArg(0)), nil
	}
	return romloader.Loader{}, curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
}

// the flags shared by the RUN and DEBUG modes.
type commonFlags struct {
	display *string
	log     *bool
	prefs   *string
	fpsCap  *bool
	scale   *int
	stats   *bool
}

func addCommonFlags(md *modalflag.Modes, displays string) commonFlags {
	return commonFlags{
		display: md.AddString("display", "SDL", fmt.Sprintf("display type: %s", displays)),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:   md.AddString("prefs", "", "preferences for this session (eg. \"hardware.ipc::15; quirks.shiftvy::true\")"),
		fpsCap:  md.AddBool("fpscap", true, "pace the emulation at the timer tick rate"),
		scale:   md.AddInt("scale", 0, "pixel scaling of the SDL display (0 for the preferred value)"),
		stats:   md.AddBool("statsview", false, "launch the runtime statistics server (if available)"),
	}
}

// prepare the VM according to the common flags. the limiter is nil if the
// emulation is not to be paced. the returned function must be called when the
// VM is no longer required.
func (f commonFlags) prepare(output io.Writer, rom romloader.Loader) (*hardware.VM, *limiter.FpsLimiter, func(), error) {
	if *f.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *f.stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			io.WriteString(output, "! statsview is not available in this build\n")
		}
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	var lim *limiter.FpsLimiter

	end := func() {
		if lim != nil {
			lim.Close()
		}
		if *f.prefs != "" {
			_ = prefs.PopCommandLineStack()
		}
	}

	vm, err := hardware.NewVM(nil)
	if err != nil {
		end()
		return nil, nil, nil, err
	}

	if err := vm.AttachROM(rom); err != nil {
		end()
		return nil, nil, nil, err
	}

	if *f.fpsCap {
		lim, err = limiter.NewFPSLimiter(timers.TickRate)
		if err != nil {
			end()
			return nil, nil, nil, err
		}
	}

	return vm, lim, end, nil
}

// createGUI sends the creator function to the main thread and waits for the
// result.
func createGUI(sync *mainSync, creator func() (GuiCreator, error)) (gui.GUI, error) {
	sync.creator <- creator
	select {
	case g := <-sync.creation:
		return g.(gui.GUI), nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// setupGUI attaches the GUI to the VM and opens the window.
func setupGUI(scr gui.GUI, vm *hardware.VM, scale int) error {
	if err := scr.SetFeature(gui.ReqSetTitle, vm.ROM.ShortName()); err != nil {
		return err
	}
	if scale > 0 {
		if err := scr.SetFeature(gui.ReqSetScale, scale); err != nil {
			return err
		}
	}
	return scr.SetFeature(gui.ReqSetVisibility, true)
}

// run the VM until it stops or halts. the interrupt channel stops the VM in
// the same way as the -cycles flag and can be nil.
func run(md *modalflag.Modes, sync *mainSync, interrupt <-chan os.Signal) error {
	md.NewMode()

	flags := addCommonFlags(md, "SDL, TERM, NONE")
	cycles := md.AddUint64("cycles", 0, "stop after the number of cycles (0 for no limit)")
	wav := md.AddString("wav", "", "record the tone to a wav file")

	if ok, err := parse(md); !ok {
		return err
	}

	rom, err := romArgument(md)
	if err != nil {
		return err
	}

	vm, lim, end, err := flags.prepare(md.Output, rom)
	if err != nil {
		return err
	}
	defer end()

	if lim != nil {
		vm.SetLimiter(lim)
	}

	queue := userinput.NewQueue()
	toneFreq := defaultToneFreq

	var scr gui.GUI
	var video *digest.Video
	var audio *digest.Audio

	switch strings.ToUpper(*flags.display) {
	case "SDL":
		scr, err = createGUI(sync, func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(queue)
		})
		if err != nil {
			return err
		}
		if sp, ok := scr.(*sdlplay.SdlPlay); ok {
			toneFreq = sp.Prefs.ToneFreq.Get().(float64)
		}

	case "TERM":
		if *flags.scale > 0 {
			return curated.Errorf(usageError, "scale cannot be used with the TERM display")
		}
		scr, err = createGUI(sync, func() (GuiCreator, error) {
			return termplay.NewTermPlay(queue)
		})
		if err != nil {
			return err
		}

	case "NONE":
		video = digest.NewVideo()
		audio = digest.NewAudio()
		vm.AddDisplay(video)
		vm.AddAudioMixer(audio)

	default:
		return curated.Errorf(usageError, fmt.Sprintf("unknown display type (%s)", *flags.display))
	}

	if scr != nil {
		vm.AddDisplay(scr)
		vm.AddAudioMixer(scr)
		vm.AttachInput(queue)
		if err := setupGUI(scr, vm, *flags.scale); err != nil {
			return err
		}
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, toneFreq)
		if err != nil {
			return err
		}
		vm.AddAudioMixer(aw)
	}

	// the interrupt signal stops the VM rather than quitting the program so
	// that the audio mixers are ended and the digests are printed
	if sync != nil {
		sync.state <- stateRequest{req: reqNoIntSig}
	}

	state := vm.State
	err = vm.Run(func() (govern.State, error) {
		select {
		case <-interrupt:
			return govern.Stopped, nil
		default:
		}
		if scr != nil && vm.State != state {
			state = vm.State
			if err := scr.SetFeature(gui.ReqState, state); err != nil {
				return state, err
			}
		}
		if *cycles > 0 && vm.Cycles() >= *cycles {
			return govern.Stopped, nil
		}
		return vm.State, nil
	})

	// the digests are printed even if the program halted with a fault
	if video != nil {
		io.WriteString(md.Output, fmt.Sprintf("video: %s (%d frames)\n", video.Hash(), video.Frames()))
		io.WriteString(md.Output, fmt.Sprintf("audio: %s\n", audio.Hash()))
	}

	return err
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addCommonFlags(md, "SDL, NONE")

	if ok, err := parse(md); !ok {
		return err
	}

	rom, err := romArgument(md)
	if err != nil {
		return err
	}

	vm, lim, end, err := flags.prepare(md.Output, rom)
	if err != nil {
		return err
	}
	defer end()

	var scr gui.GUI
	var input hardware.Input

	switch strings.ToUpper(*flags.display) {
	case "SDL":
		queue := userinput.NewQueue()
		scr, err = createGUI(sync, func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(queue)
		})
		if err != nil {
			return err
		}
		if *flags.scale > 0 {
			if err := scr.SetFeature(gui.ReqSetScale, *flags.scale); err != nil {
				return err
			}
		}
		input = queue

	case "NONE":

	case "TERM":
		// the terminal display and the debugger would both read from stdin
		return curated.Errorf(usageError, "TERM display cannot be used with the debugger")

	default:
		return curated.Errorf(usageError, fmt.Sprintf("unknown display type (%s)", *flags.display))
	}

	// turn off fallback ctrl-c handling so that the debugger can use
	// interrupts to halt the emulation without quitting
	sync.state <- stateRequest{req: reqNoIntSig}

	// the prompt is omitted when commands are being piped into the debugger
	dbgterm := plainterm.NewPlainTerminal(os.Stdin, md.Output, term.IsTerminal(int(os.Stdin.Fd())))

	// the limiter is not attached to the VM so that the CYCLE command runs
	// without pacing. the debugger uses it for the RUN command
	var pace hardware.Limiter
	if lim != nil {
		pace = lim
	}

	dbg, err := debugger.NewDebugger(vm, dbgterm, scr, input, pace)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")

	if ok, err := parse(md); !ok {
		return err
	}

	rom, err := romArgument(md)
	if err != nil {
		return err
	}

	if err := rom.Load(); err != nil {
		return err
	}

	dsm, err := disassembly.FromROM(rom.Data)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "pace the emulation at the timer tick rate")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s lead time)")
	profile := md.AddString("profile", "NONE", "produce profiling reports: CPU, MEM, TRACE, ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	if ok, err := parse(md); !ok {
		return err
	}

	rom, err := romArgument(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(usageError, err)
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	return performance.Check(md.Output, prf, rom, nil, !*fpsCap, *duration)
}
