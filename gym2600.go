// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/gym2600/bots"
	"github.com/jetsetilly/gym2600/bots/fuzz"
	"github.com/jetsetilly/gym2600/bots/tas"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/modalflag"
	"github.com/jetsetilly/gym2600/paths"
	"github.com/jetsetilly/gym2600/random"
	"github.com/jetsetilly/gym2600/scenario"
	"github.com/jetsetilly/gym2600/sdlview"
	"github.com/jetsetilly/gym2600/statsview"
	"github.com/jetsetilly/gym2600/stepper"
	"github.com/jetsetilly/gym2600/vcs"
	"github.com/jetsetilly/gym2600/version"
	"github.com/jetsetilly/gym2600/wavwriter"
)

// SDL requires that window creation and event handling happen on the main
// thread. everything in gym2600 runs on the main goroutine so locking it to
// the main thread is sufficient
func init() {
	runtime.LockOSThread()
}

func main() {
	// #ctrlc ends a session between steps
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch returns the value to be used with os.Exit()
func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("LOAD", "TAS", "FUZZ", "NOISE", "SWEEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "LOAD":
		err = load(ctx, md)

	case "TAS":
		err = replay(ctx, md)

	case "FUZZ":
		err = fuzzing(ctx, md)

	case "NOISE":
		err = noise(ctx, md)

	case "SWEEP":
		err = sweep(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	if ctx.Err() != nil {
		fmt.Print("\r")
	}

	return 0
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Println(version.String())
	if *revision {
		_, r, _ := version.Version()
		fmt.Println(r)
	}

	return nil
}

// flags common to all modes
type common struct {
	scenario  *string
	mapping   *string
	spec      *string
	frameskip *int
	sticky    *float64
	seed      *int64
	wav       *string
	log       *bool
	stats     *bool

	// environment options usually given in a scenario file
	noopReset   *int
	maxFrames   *int
	observation *string
	actions     *string
	score       *string

	// stops the statsview server
	stopStats func()
}

func addCommonFlags(md *modalflag.Modes, def scenario.Scenario) *common {
	return &common{
		scenario:  md.AddString("scenario", "", "scenario file (YAML)"),
		mapping:   md.AddString("mapping", "AUTO", "force use of cartridge mapping"),
		spec:      md.AddString("tv", def.TV, "television specification: AUTO, NTSC, PAL"),
		frameskip: md.AddInt("frameskip", def.FrameSkip, "number of frames each step spans"),
		sticky:    md.AddFloat64("sticky", def.Sticky, "probability of repeating the previous action"),
		seed:      md.AddInt64("seed", def.Seed, "seed for random number generation (zero for time based seed, -1 for normalised)"),
		wav:       md.AddString("wav", "", fmt.Sprintf("record audio to wav file (%s for generated name)", paths.Auto)),
		log:       md.AddBool("log", false, "echo log to stdout"),
		stats:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),

		noopReset:   md.AddInt("noopreset", def.NoopReset, "number of NOOP frames after every reset"),
		maxFrames:   md.AddInt("maxframes", def.MaxFrames, "end an episode after this many frames (zero for never)"),
		observation: md.AddString("observation", "", "rescale observations to WIDTHxHEIGHT"),
		actions:     md.AddString("actions", "", "comma separated minimal action set"),
		score:       md.AddString("score", "", "comma separated RAM addresses of the BCD score"),
	}
}

// options to control how a bot runs
type stepping struct {
	delay  *time.Duration
	render *bool
	step   *bool
	scale  *int
}

func addSteppingFlags(md *modalflag.Modes, def scenario.Scenario) *stepping {
	return &stepping{
		delay:  md.AddDuration("delay", def.Delay, "pause after every step"),
		render: md.AddBool("render", false, "display frames in a window"),
		step:   md.AddBool("step", false, "wait for key press after every step (q to quit)"),
		scale:  md.AddInt("scale", 2, "window scaling"),
	}
}

// resolve applies the scenario file and any flags that have been set
// explicitly. flags take priority over the scenario file
func (c *common) resolve(md *modalflag.Modes) (scenario.Scenario, error) {
	var sc scenario.Scenario
	var err error

	if *c.scenario != "" {
		sc, err = scenario.Load(*c.scenario)
	} else {
		sc, err = scenario.Default()
	}
	if err != nil {
		return sc, err
	}

	if md.IsSet("tv") || sc.TV == "" {
		sc.TV = *c.spec
	}
	if md.IsSet("frameskip") {
		sc.FrameSkip = *c.frameskip
	}
	if md.IsSet("sticky") {
		sc.Sticky = *c.sticky
	}
	if md.IsSet("seed") {
		sc.Seed = *c.seed
	}
	if md.IsSet("noopreset") {
		sc.NoopReset = *c.noopReset
	}
	if md.IsSet("maxframes") {
		sc.MaxFrames = *c.maxFrames
	}
	if md.IsSet("observation") {
		sc.Observation, err = scenario.ParseSize(*c.observation)
		if err != nil {
			return sc, err
		}
	}
	if md.IsSet("actions") {
		sc.Actions = scenario.ParseList(*c.actions)
	}
	if md.IsSet("score") {
		sc.Score, err = scenario.ParseAddresses(*c.score)
		if err != nil {
			return sc, err
		}
	}

	if err := sc.Validate(); err != nil {
		return sc, err
	}

	if *c.log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *c.stats {
		if statsview.Available() {
			c.stopStats = statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	return sc, nil
}

// end releases anything started by resolve()
func (c *common) end() {
	if c.stopStats != nil {
		c.stopStats()
		c.stopStats = nil
	}
}

// rom returns the ROM named on the command line or in the scenario. the
// number of arguments permitted after the ROM is given by extra
func rom(md *modalflag.Modes, sc scenario.Scenario, extra int) (string, error) {
	args := md.RemainingArgs()
	if len(args) > 1+extra {
		return "", fmt.Errorf("too many arguments for %s mode", md)
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if sc.ROM != "" {
		return sc.ROM, nil
	}
	return "", fmt.Errorf("2600 cartridge required for %s mode", md)
}

// session bundles the environment with the optional window, stepper and audio
// recording
type session struct {
	env     *environment.Environment
	stepper *stepper.Stepper
	cancel  context.CancelFunc
	opts    bots.Options
}

func newSession(ctx context.Context, c *common, st *stepping, sc scenario.Scenario, filename string) (context.Context, *session, error) {
	eopts, err := sc.Options()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{cancel: cancel}

	var vopts vcs.Options
	vopts.Spec = sc.TV
	vopts.Mapping = *c.mapping

	if *c.wav != "" {
		wav, err := wavwriter.NewWavWriter(paths.Resolve(*c.wav, "audio", filename, "wav"), wavwriter.DefaultSampleRate)
		if err != nil {
			cancel()
			return nil, nil, err
		}
		vopts.Audio = wav
	}

	machine, err := vcs.NewMachine(filename, vopts)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	rnd := random.NewRandom(sc.Seed)
	logger.Logf(logger.Allow, "environment", "random seed %d", rnd.Seed())

	s.env, err = environment.NewEnvironment(machine, rnd, eopts)
	if err != nil {
		machine.End()
		cancel()
		return nil, nil, err
	}

	if st == nil {
		return ctx, s, nil
	}

	s.opts.Delay = *st.delay

	if *st.render {
		view, err := sdlview.NewSdlView(*st.scale)
		if err != nil {
			s.close()
			return nil, nil, err
		}
		view.SetQuitHandler(cancel)
		s.env.AttachRenderer(view)
	}

	if *st.step {
		s.stepper, err = stepper.NewStepper()
		if err != nil {
			s.close()
			return nil, nil, err
		}
		s.opts.Stepper = s.stepper
	}

	return ctx, s, nil
}

func (s *session) close() error {
	defer s.cancel()

	if s.stepper != nil {
		if err := s.stepper.Close(); err != nil {
			s.env.Close()
			return err
		}
	}

	return s.env.Close()
}

func load(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def, err := scenario.Default()
	if err != nil {
		return err
	}
	c := addCommonFlags(md, def)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := c.resolve(md)
	defer c.end()
	if err != nil {
		return err
	}

	filename, err := rom(md, sc, 0)
	if err != nil {
		return err
	}

	_, s, err := newSession(ctx, c, nil, sc, filename)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.env.Reset(); err != nil {
		return err
	}

	res, err := s.env.Step(environment.Noop)
	if err != nil {
		return err
	}

	fmt.Printf("%s loaded (frame %d, %d actions)\n", filename, res.Frame, s.env.ActionSpace().N())

	return s.close()
}

func replay(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def, err := scenario.Default()
	if err != nil {
		return err
	}
	c := addCommonFlags(md, def)
	st := addSteppingFlags(md, def)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := c.resolve(md)
	defer c.end()
	if err != nil {
		return err
	}

	filename, err := rom(md, sc, 1)
	if err != nil {
		return err
	}

	transcript := tas.DefaultTranscript()
	if fn := md.GetArg(1); fn != "" {
		transcript, err = tas.Load(fn)
		if err != nil {
			return err
		}
	} else if sc.Transcript != "" {
		transcript, err = tas.Load(sc.Transcript)
		if err != nil {
			return err
		}
	}

	ctx, s, err := newSession(ctx, c, st, sc, filename)
	if err != nil {
		return err
	}
	defer s.close()

	_, err = tas.Replay(ctx, s.env, transcript, s.opts)
	if err != nil {
		return err
	}

	return s.close()
}

func fuzzing(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def, err := scenario.Default()
	if err != nil {
		return err
	}
	c := addCommonFlags(md, def)
	st := addSteppingFlags(md, def)
	steps := md.AddInt("steps", def.FuzzSteps, "number of steps")
	record := md.AddString("record", "", fmt.Sprintf("write the fuzzed actions to a transcript file (%s for generated name)", paths.Auto))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := c.resolve(md)
	defer c.end()
	if err != nil {
		return err
	}
	if md.IsSet("steps") {
		sc.FuzzSteps = *steps
	}

	filename, err := rom(md, sc, 0)
	if err != nil {
		return err
	}

	ctx, s, err := newSession(ctx, c, st, sc, filename)
	if err != nil {
		return err
	}
	defer s.close()

	var rec *tas.Recorder
	if *record != "" {
		f, err := os.Create(paths.Resolve(*record, "fuzz", filename, "tas"))
		if err != nil {
			return err
		}
		defer f.Close()

		rec = tas.NewRecorder(f, fmt.Sprintf("fuzzed %s", filename), fmt.Sprintf("seed %d", s.env.Random.Seed()))
		s.opts.Observer = rec
	}

	sum, err := fuzz.Inputs(ctx, s.env, sc.FuzzSteps, s.opts)
	if err != nil {
		return err
	}

	if rec != nil {
		if err := rec.End(); err != nil {
			return err
		}
	}

	fmt.Printf("fuzzed %d steps (%d episodes)\n", sum.Steps, sum.Episodes)

	return s.close()
}

func noise(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def, err := scenario.Default()
	if err != nil {
		return err
	}
	c := addCommonFlags(md, def)
	st := addSteppingFlags(md, def)
	effect := md.AddString("effect", "thermodynamic", "effect to apply: thermodynamic, cosmodynamic, cold, ambient heat")
	param := md.AddFloat64("param", 300, "parameter value for the effect")

	md.AdditionalHelp("If no effect is specified, all effects in the scenario are applied in turn.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := c.resolve(md)
	defer c.end()
	if err != nil {
		return err
	}
	if md.IsSet("effect") || md.IsSet("param") {
		sc.Effects = []scenario.Effect{{Effect: *effect, Param: *param}}
		if _, err := sc.Applications(); err != nil {
			return err
		}
	}

	filename, err := rom(md, sc, 0)
	if err != nil {
		return err
	}

	ctx, s, err := newSession(ctx, c, st, sc, filename)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.env.Reset(); err != nil {
		return err
	}

	r := scenario.NewRunner(s.env, sc, s.opts)
	if err := r.PhysicalWorld(ctx); err != nil {
		return err
	}

	fmt.Printf("environment functional after %d bit flips\n", r.Injector.Flipped())

	return s.close()
}

func sweep(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	def, err := scenario.Default()
	if err != nil {
		return err
	}
	c := addCommonFlags(md, def)
	st := addSteppingFlags(md, def)
	steps := md.AddInt("steps", def.FuzzSteps, "number of fuzzing steps for each combination")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := c.resolve(md)
	defer c.end()
	if err != nil {
		return err
	}
	if md.IsSet("steps") {
		sc.FuzzSteps = *steps
	}

	filename, err := rom(md, sc, 0)
	if err != nil {
		return err
	}

	ctx, s, err := newSession(ctx, c, st, sc, filename)
	if err != nil {
		return err
	}
	defer s.close()

	r := scenario.NewRunner(s.env, sc, s.opts)
	sum, err := r.Sweep(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("swept %d of %d combinations (%d steps, %d bits flipped)\n",
		sum.Combinations, sc.Sweep.Combinations(), sum.Steps, sum.Flipped)

	return s.close()
}
