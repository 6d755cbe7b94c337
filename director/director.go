// Package director is the supervising core: it owns the property roster, the
// set of running engines, the output writer, and the advice files, and
// drives all three to completion. It corresponds to the single component the
// rest of this module exists to support; every other package is a leaf it
// depends on.
package director

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/jkind-go/director/advice"
	"github.com/jkind-go/director/config"
	"github.com/jkind-go/director/counterexample"
	"github.com/jkind-go/director/engine"
	"github.com/jkind-go/director/message"
	"github.com/jkind-go/director/shutdown"
	"github.com/jkind-go/director/spec"
	"github.com/jkind-go/director/writer"
)

// Stand-in cadence constants for the engines' simulated work. These are not
// part of the configuration surface: they govern only how quickly the
// stand-in engines described in the component design produce messages, not
// any real proof search. pollInterval is the exception: it is the
// supervision loop's sleep between passes.
const (
	bmcInterval        = 150 * time.Millisecond
	bmcMaxDepth        = 20
	proofDelay         = 250 * time.Millisecond
	invGenInterval     = 400 * time.Millisecond
	invGenMaxRounds    = 0
	smoothingShortenBy = 1
	pollInterval       = 100 * time.Millisecond
)

// Director is the supervising core described in the component design: it
// owns the roster, the running engines, and the writer, and drives them to
// completion via a single supervision goroutine.
type Director struct {
	settings     config.Settings
	userSpec     spec.Specification
	analysisSpec spec.Specification

	w writer.Writer

	startTime time.Time

	propertyOrder []string
	remaining     map[string]struct{}
	valid         []string
	invalid       []string

	baseStep                 int
	inductiveCounterexamples map[string]counterexample.Counterexample
	bmcUnknowns              map[string]int
	kIndUnknowns             map[string]struct{}
	pdrUnknowns              map[string]struct{}

	engines    []engine.Engine
	engineDone []chan struct{}
	mailbox    chan message.Message

	inputAdvice  *advice.Advice
	adviceWriter *advice.Writer

	output strings.Builder

	coordinator *shutdown.Coordinator
	stdin       *stdinProbe

	exitCode int

	log *log.Logger
}

// New constructs a Director and starts its configured engines. userSpec is
// used for counterexample extraction; analysisSpec's node properties seed
// the roster. interactive hints the writer selection (§4.3) toward the
// console writer when no file-based writer is configured.
func New(settings config.Settings, userSpec, analysisSpec spec.Specification, interactive bool) (*Director, error) {
	w, err := newWriter(settings, interactive)
	if err != nil {
		return nil, err
	}
	w.Begin()

	d := &Director{
		settings:                 settings,
		userSpec:                 userSpec,
		analysisSpec:             analysisSpec,
		w:                        w,
		startTime:                time.Now(),
		propertyOrder:            append([]string(nil), analysisSpec.Node.Properties...),
		remaining:                make(map[string]struct{}, len(analysisSpec.Node.Properties)),
		inductiveCounterexamples: make(map[string]counterexample.Counterexample),
		bmcUnknowns:              make(map[string]int),
		kIndUnknowns:             make(map[string]struct{}),
		pdrUnknowns:              make(map[string]struct{}),
		mailbox:                  make(chan message.Message, 256),
		log:                      log.New(os.Stderr, "[director] ", log.LstdFlags),
	}
	for _, p := range analysisSpec.Node.Properties {
		d.remaining[p] = struct{}{}
	}
	for _, p := range analysisSpec.Node.Properties {
		if !settings.BoundedModelChecking {
			d.bmcUnknowns[p] = 0
		}
		if !settings.KInduction {
			d.kIndUnknowns[p] = struct{}{}
		}
		if !settings.PdrEnabled() {
			d.pdrUnknowns[p] = struct{}{}
		}
	}

	if settings.ReadAdvice != "" {
		a, err := advice.Read(settings.ReadAdvice)
		if err != nil {
			d.log.Printf("advice: could not read %s, continuing without it: %v", settings.ReadAdvice, err)
		} else {
			d.inputAdvice = a
		}
	}
	if settings.WriteAdvice != "" {
		d.adviceWriter = advice.NewWriter(settings.WriteAdvice)
		d.adviceWriter.AddVarDecls(analysisSpec.Node.VarDecls)
	}

	d.startEngines()
	d.stdin = newStdinProbe()

	d.printPreamble()

	return d, nil
}

func (d *Director) publish(m message.Message) {
	d.mailbox <- m
}

func (d *Director) startEngines() {
	properties := d.propertyOrder

	validItinerary := message.ValidItinerary(d.settings.ReduceIvc, d.settings.AllIvcs)
	invalidItinerary := message.InvalidItinerary(d.settings.SmoothCounterexamples)

	if d.settings.BoundedModelChecking {
		d.addEngine(engine.NewBMC(d.publish, properties, bmcMaxDepth, bmcInterval, nil, invalidItinerary))
	}
	if d.settings.KInduction {
		d.addEngine(engine.NewKInduction(d.publish, properties, proofDelay, nil, validItinerary))
	}
	if d.settings.InvariantGeneration {
		d.addEngine(engine.NewInvariantGeneration(d.publish, invGenInterval, invGenMaxRounds))
	}
	if d.settings.SmoothCounterexamples {
		d.addEngine(engine.NewSmoothing(d.publish, smoothingShortenBy))
	}
	if d.settings.PdrEnabled() {
		d.addEngine(engine.NewPDR(d.publish, properties, proofDelay, nil, validItinerary))
	}
	if d.settings.ReadAdvice != "" {
		d.addEngine(engine.NewAdviceEngine(d.publish, properties, d.inputAdvice.HasInvariantsFor, validItinerary))
	}
	if d.settings.ReduceIvc {
		d.addEngine(engine.NewIvcReduction(d.publish))
	}
	if d.settings.AllIvcs {
		d.addEngine(engine.NewAllIvcs(d.publish))
	}
}

func (d *Director) addEngine(e engine.Engine) {
	d.engines = append(d.engines, e)
	done := make(chan struct{})
	d.engineDone = append(d.engineDone, done)
	go func() {
		defer close(done)
		e.Run()
	}()
}

func (d *Director) runtime() time.Duration {
	return time.Since(d.startTime)
}

func intersect(candidates []string, remaining map[string]struct{}) []string {
	out := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if _, ok := remaining[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
