package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileSettings mirrors Settings' recognized option set for YAML decoding.
// Command-line flags always take precedence over these; see MergeFile.
type fileSettings struct {
	BoundedModelChecking  *bool   `yaml:"boundedModelChecking"`
	KInduction            *bool   `yaml:"kInduction"`
	InvariantGeneration   *bool   `yaml:"invariantGeneration"`
	SmoothCounterexamples *bool   `yaml:"smoothCounterexamples"`
	PdrMax                *int    `yaml:"pdrMax"`
	ReadAdvice            *string `yaml:"readAdvice"`
	WriteAdvice           *string `yaml:"writeAdvice"`
	ReduceIvc             *bool   `yaml:"reduceIvc"`
	AllIvcs               *bool   `yaml:"allIvcs"`
	AllAssigned           *bool   `yaml:"allAssigned"`
	TimeoutSeconds        *int    `yaml:"timeoutSeconds"`
	Excel                 *bool   `yaml:"excel"`
	XML                   *bool   `yaml:"xml"`
	XMLToStdout           *bool   `yaml:"xmlToStdout"`
	MiniJKind             *bool   `yaml:"miniJkind"`
	Filename              *string `yaml:"filename"`
}

// LoadFile reads a YAML configuration file into a Settings value seeded with
// defaults. Fields absent from the file keep their default.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	s := New()
	fs.applyTo(&s)
	return s, nil
}

// MergeFile applies every field path's file sets onto base, overwriting
// base's value for that field. Callers wanting "flags win over file" (the
// documented precedence) should call MergeFile first and apply explicit
// flag overrides afterwards; see cmd/director, which only re-applies flags
// the user actually passed (via flag.Visit).
func MergeFile(base Settings, path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	fs.applyTo(&base)
	return base, nil
}

func (fs fileSettings) applyTo(s *Settings) {
	if fs.BoundedModelChecking != nil {
		s.BoundedModelChecking = *fs.BoundedModelChecking
	}
	if fs.KInduction != nil {
		s.KInduction = *fs.KInduction
	}
	if fs.InvariantGeneration != nil {
		s.InvariantGeneration = *fs.InvariantGeneration
	}
	if fs.SmoothCounterexamples != nil {
		s.SmoothCounterexamples = *fs.SmoothCounterexamples
	}
	if fs.PdrMax != nil {
		s.PdrMax = *fs.PdrMax
	}
	if fs.ReadAdvice != nil {
		s.ReadAdvice = *fs.ReadAdvice
	}
	if fs.WriteAdvice != nil {
		s.WriteAdvice = *fs.WriteAdvice
	}
	if fs.ReduceIvc != nil {
		s.ReduceIvc = *fs.ReduceIvc
	}
	if fs.AllIvcs != nil {
		s.AllIvcs = *fs.AllIvcs
	}
	if fs.AllAssigned != nil {
		s.AllAssigned = *fs.AllAssigned
	}
	if fs.TimeoutSeconds != nil {
		s.Timeout = time.Duration(*fs.TimeoutSeconds) * time.Second
	}
	if fs.Excel != nil {
		s.Excel = *fs.Excel
	}
	if fs.XML != nil {
		s.XML = *fs.XML
	}
	if fs.XMLToStdout != nil {
		s.XMLToStdout = *fs.XMLToStdout
	}
	if fs.MiniJKind != nil {
		s.MiniJKind = *fs.MiniJKind
	}
	if fs.Filename != nil {
		s.Filename = *fs.Filename
	}
}
