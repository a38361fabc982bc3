// This file is part of Pushpop.
//
// Pushpop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pushpop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pushpop.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/hardware/fifo"
	"github.com/jetsetilly/pushpop/logger"
	"github.com/jetsetilly/pushpop/modalflag"
	"github.com/jetsetilly/pushpop/paths"
	"github.com/jetsetilly/pushpop/prefs"
	"github.com/jetsetilly/pushpop/regression"
	"github.com/jetsetilly/pushpop/scenario"
	"github.com/jetsetilly/pushpop/statsview"
	"github.com/jetsetilly/pushpop/stepper"
	"github.com/jetsetilly/pushpop/terminal"
	"github.com/jetsetilly/pushpop/version"
	"github.com/jetsetilly/pushpop/waveform"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences"

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
	exitFailure    = 30
)

// errTimedOut is returned by the RUN and STEP modes when the cycle budget is
// exhausted before both queues are drained.
const errTimedOut = "cycle budget exhausted after %d cycles"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "STEP":
		err = step(md)
	case "REGRESS":
		err = regress(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if curated.Is(err, errTimedOut) || curated.Is(err, regressionFailures) {
			return exitFailure
		}
		return exitModeError
	}

	return 0
}

// settings shared by the RUN and STEP modes
type runFlags struct {
	maxCycles    *int
	settleCycles *int
	accept       *int
	response     *int
	jitter       *int
	depth        *int
	width        *int
	verbose      *bool
	log          *bool
	prefs        *string
	savePrefs    *bool
}

// preferences are loaded before the flags are added so that the defaults of
// the flags are the values in the preferences file
func loadPreferences() (*driver.Preferences, *fifo.Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, nil, err
	}

	drvPrefs, err := driver.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	devPrefs, err := fifo.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	return drvPrefs, devPrefs, nil
}

func addRunFlags(md *modalflag.Modes, drvPrefs *driver.Preferences, devPrefs *fifo.Preferences) runFlags {
	return runFlags{
		maxCycles:    md.AddInt("maxcycles", drvPrefs.MaxCycles.Get().(int), "cycle budget for the run"),
		settleCycles: md.AddInt("settle", drvPrefs.SettleCycles.Get().(int), "cycles to advance after the queues are drained"),
		accept:       md.AddInt("accept", devPrefs.AcceptLatency.Get().(int), "device accept latency in cycles"),
		response:     md.AddInt("response", devPrefs.ResponseLatency.Get().(int), "device response latency in cycles"),
		jitter:       md.AddInt("jitter", devPrefs.Jitter.Get().(int), "maximum random cycles added to device latencies"),
		depth:        md.AddInt("depth", devPrefs.Depth.Get().(int), "device FIFO depth (0 is unbounded)"),
		width:        md.AddInt("width", devPrefs.DataWidth.Get().(int), "width of the data signals in bits"),
		verbose:      md.AddBool("verbose", drvPrefs.Verbose.Get().(bool), "log every channel state transition"),
		log:          md.AddBool("log", false, "echo log to stdout"),
		prefs:        md.AddString("prefs", "", "preferences to apply for this run (key::value; key::value)"),
		savePrefs:    md.AddBool("saveprefs", false, "save the flag values as the new preferences"),
	}
}

// apply the command line flags to the preferences and build the scenario
// from the remaining arguments
func (fl runFlags) scenario(md *modalflag.Modes, drvPrefs *driver.Preferences, devPrefs *fifo.Preferences) (scenario.Scenario, error) {
	if *fl.prefs != "" {
		prefs.PushCommandLineStack(*fl.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(md.Output, "! unused preferences: %s\n", unused)
			}
		}()
		if err := drvPrefs.Load(); err != nil {
			return scenario.Scenario{}, err
		}
		if err := devPrefs.Load(); err != nil {
			return scenario.Scenario{}, err
		}
	}

	// only flags that have been set explicitly override the preferences
	var err error
	md.Visit(func(name string) {
		if err != nil {
			return
		}
		switch name {
		case "maxcycles":
			err = drvPrefs.MaxCycles.Set(*fl.maxCycles)
		case "settle":
			err = drvPrefs.SettleCycles.Set(*fl.settleCycles)
		case "verbose":
			err = drvPrefs.Verbose.Set(*fl.verbose)
		case "accept":
			err = devPrefs.AcceptLatency.Set(*fl.accept)
		case "response":
			err = devPrefs.ResponseLatency.Set(*fl.response)
		case "jitter":
			err = devPrefs.Jitter.Set(*fl.jitter)
		case "depth":
			err = devPrefs.Depth.Set(*fl.depth)
		case "width":
			err = devPrefs.DataWidth.Set(*fl.width)
		}
	})
	if err != nil {
		return scenario.Scenario{}, err
	}

	if *fl.savePrefs {
		if err := drvPrefs.Save(); err != nil {
			return scenario.Scenario{}, err
		}
		if err := devPrefs.Save(); err != nil {
			return scenario.Scenario{}, err
		}
	}

	if *fl.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	opts := devPrefs.Options()

	var queues [2]driver.Queue
	switch len(md.RemainingArgs()) {
	case 0:
		return scenario.Scenario{}, fmt.Errorf("at least one command queue required for %s mode", md)
	case 1, 2:
		for i, a := range md.RemainingArgs() {
			queues[i], err = scenario.ParseQueue(a, opts.DataWidth)
			if err != nil {
				return scenario.Scenario{}, err
			}
		}
	default:
		return scenario.Scenario{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	sc := scenario.NewScenario(md.String(), queues[0], queues[1])
	sc.MaxCycles = drvPrefs.MaxCycles.Get().(int)
	sc.SettleCycles = drvPrefs.SettleCycles.Get().(int)
	sc.Device = opts

	return sc, nil
}

func printResults(output io.Writer, res driver.Results) {
	fmt.Fprintf(output, "A: %s\n", scenario.FormatResults(res.A))
	fmt.Fprintf(output, "B: %s\n", scenario.FormatResults(res.B))
	fmt.Fprintf(output, "cycles: %d\n", res.Cycles)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	drvPrefs, devPrefs, err := loadPreferences()
	if err != nil {
		return err
	}

	fl := addRunFlags(md, drvPrefs, devPrefs)
	vcdFile := md.AddString("vcd", "", "write a VCD waveform of every signal to file")
	wavFile := md.AddString("wav", "", "write every signal as a channel of a WAV file")
	memvizFile := md.AddString("memviz", "", "write a memviz graph of the driver to file if the run times out")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp(`Command queues are lists of values and the word "pop", separated by spaces or
commas. Values are pushed. The first queue is run on channel A and the second on
channel B. For example:

    pushpop -maxcycles 50 "5, 0x10, pop" "pop"`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := fl.scenario(md, drvPrefs, devPrefs)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	rig, err := sc.Build()
	if err != nil {
		return err
	}
	rig.Dual.SetLogging(drvPrefs)

	var vcd *waveform.VCD
	if *vcdFile != "" {
		f, err := os.Create(*vcdFile)
		if err != nil {
			return err
		}
		defer f.Close()

		vcd, err = waveform.NewVCD(f, rig.Sim.Signals(), "pushpop")
		if err != nil {
			return err
		}
		rig.Sim.AddObserver(vcd)
	}

	var wav *waveform.WAV
	if *wavFile != "" {
		f, err := os.Create(*wavFile)
		if err != nil {
			return err
		}
		defer f.Close()

		wav, err = waveform.NewWAV(f, rig.Sim.Signals(), waveform.DefaultSampleRate)
		if err != nil {
			return err
		}
		rig.Sim.AddObserver(wav)
	}

	out, err := rig.Run(sc)
	if err != nil {
		return err
	}

	if vcd != nil {
		rig.Sim.RemoveObserver(vcd)
		if err := vcd.Close(); err != nil {
			return err
		}
	}

	if wav != nil {
		rig.Sim.RemoveObserver(wav)
		if err := wav.Close(); err != nil {
			return err
		}
	}

	printResults(md.Output, out.Results)

	if out.TimedOut {
		if *memvizFile != "" {
			f, err := os.Create(*memvizFile)
			if err != nil {
				return err
			}
			rig.Dual.Dump(f)
			if err := f.Close(); err != nil {
				return err
			}
		}
		logger.Tail(md.Output, 3)
		return curated.Errorf(errTimedOut, out.Cycles)
	}

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	drvPrefs, devPrefs, err := loadPreferences()
	if err != nil {
		return err
	}

	fl := addRunFlags(md, drvPrefs, devPrefs)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := fl.scenario(md, drvPrefs, devPrefs)
	if err != nil {
		return err
	}

	term, err := terminal.Open(md.Output)
	if err != nil {
		return err
	}
	defer term.Close()

	// the terminal must be restored if the user interrupts the program
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		if _, ok := <-intChan; ok {
			term.Close()
			os.Exit(exitFailure)
		}
	}()

	stp, err := stepper.NewStepper(term, md.Output, sc)
	if err != nil {
		return err
	}

	res, err := stp.Run()
	if err != nil {
		return err
	}

	printResults(md.Output, res)
	if res.TimedOut {
		return curated.Errorf(errTimedOut, res.Cycles)
	}

	return nil
}

// regressionFailures is returned by the REGRESS RUN mode when one or more
// regression tests have not succeeded.
const regressionFailures = "%d regression tests did not succeed"

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail (eg. failure reasons)")
		failOnError := md.AddBool("fail", false, "stop on the first error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		failed, err := regression.RegressRun(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}
		if failed > 0 {
			return curated.Errorf(regressionFailures, failed)
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}
		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader = os.Stdin
			if *answerYes {
				confirmation = strings.NewReader("y")
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	drvPrefs, devPrefs, err := loadPreferences()
	if err != nil {
		return err
	}

	fl := addRunFlags(md, drvPrefs, devPrefs)
	name := md.AddString("name", "", "name of the regression entry (defaults to a timestamp)")
	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(`The regression entry is run once when it is added and the results and the
signal digest are recorded. Jitter is always run with a zero seed. Names and
notes must not contain commas.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sc, err := fl.scenario(md, drvPrefs, devPrefs)
	if err != nil {
		return err
	}

	sc.Name = *name
	if sc.Name == "" {
		sc.Name = paths.UniqueFilename("scenario", "")
	}

	reg := regression.NewScenarioRegression(sc)
	reg.Notes = *notes

	return regression.RegressAdd(md.Output, reg)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", r)
	}

	return nil
}
