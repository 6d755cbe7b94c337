// Command director runs the property-checking supervisor against a single
// translated specification file, mirroring kingrea-The-Lattice's
// flag-driven cmd/module-runner entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jkind-go/director/config"
	"github.com/jkind-go/director/director"
	"github.com/jkind-go/director/spec"
)

func main() {
	specFile := flag.String("spec", "", "path to the translated analysis specification (YAML)")
	userSpecFile := flag.String("user-spec", "", "path to the user-facing specification (defaults to -spec)")
	configFile := flag.String("config", "", "path to a YAML configuration file")

	bmc := flag.Bool("bmc", false, "enable bounded model checking")
	kInduction := flag.Bool("k-induction", false, "enable k-induction")
	invGen := flag.Bool("invariant-generation", false, "enable invariant generation")
	smooth := flag.Bool("smooth", false, "enable counterexample smoothing")
	pdrMax := flag.Int("pdr-max", 0, "maximum PDR frame depth; >=1 enables PDR")
	readAdvice := flag.String("read-advice", "", "path to advice read at startup")
	writeAdvice := flag.String("write-advice", "", "path to advice written at shutdown")
	reduceIvc := flag.Bool("reduce-ivc", false, "compute inductive validity cores")
	allIvcs := flag.Bool("all-ivcs", false, "enumerate all minimal inductive validity cores")
	allAssigned := flag.Bool("all-assigned", false, "report the full node support instead of the minimal core")
	timeoutSeconds := flag.Int("timeout", 0, "analysis timeout in seconds (0 times out immediately)")
	excel := flag.Bool("excel", false, "write results as a tab-separated .xls workbook")
	xml := flag.Bool("xml", false, "write results as XML")
	xmlToStdout := flag.Bool("xml-stdout", false, "stream XML results to stdout instead of a file")
	miniJkind := flag.Bool("mini-jkind", false, "run embedded: non-interactive output, engines stopped explicitly at exit")
	filename := flag.String("filename", "jkind", "base filename for file-based writers")
	interactive := flag.Bool("interactive", true, "select the live console writer when no file-based writer is configured")

	flag.Parse()

	if *specFile == "" {
		die("-spec is required")
	}

	settings := config.New()
	if *configFile != "" {
		merged, err := config.MergeFile(settings, *configFile)
		if err != nil {
			die("%v", err)
		}
		settings = merged
	}
	applyExplicitFlags(map[string]func(){
		"bmc":                  func() { settings.BoundedModelChecking = *bmc },
		"k-induction":          func() { settings.KInduction = *kInduction },
		"invariant-generation": func() { settings.InvariantGeneration = *invGen },
		"smooth":               func() { settings.SmoothCounterexamples = *smooth },
		"pdr-max":              func() { settings.PdrMax = *pdrMax },
		"read-advice":          func() { settings.ReadAdvice = *readAdvice },
		"write-advice":         func() { settings.WriteAdvice = *writeAdvice },
		"reduce-ivc":           func() { settings.ReduceIvc = *reduceIvc },
		"all-ivcs":             func() { settings.AllIvcs = *allIvcs },
		"all-assigned":         func() { settings.AllAssigned = *allAssigned },
		"timeout":              func() { settings.Timeout = time.Duration(*timeoutSeconds) * time.Second },
		"excel":                func() { settings.Excel = *excel },
		"xml":                  func() { settings.XML = *xml },
		"xml-stdout":           func() { settings.XMLToStdout, settings.XML = *xmlToStdout, settings.XML || *xmlToStdout },
		"mini-jkind":           func() { settings.MiniJKind = *miniJkind },
		"filename":             func() { settings.Filename = *filename },
	})

	analysisSpec, err := spec.LoadFile(*specFile)
	if err != nil {
		die("%v", err)
	}
	userSpec := analysisSpec
	if *userSpecFile != "" {
		userSpec, err = spec.LoadFile(*userSpecFile)
		if err != nil {
			die("%v", err)
		}
	}

	d, err := director.New(settings, userSpec, analysisSpec, *interactive)
	if err != nil {
		die("%v", err)
	}

	os.Exit(d.Run())
}

// applyExplicitFlags re-applies only the flags the user actually passed on
// the command line, so that a supplied -config file's values survive for
// everything else. See config.MergeFile's doc comment for the precedence
// this implements.
func applyExplicitFlags(apply map[string]func()) {
	flag.Visit(func(f *flag.Flag) {
		if fn, ok := apply[f.Name]; ok {
			fn()
		}
	})
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "director: "+format+"\n", args...)
	os.Exit(1)
}
