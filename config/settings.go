// Package config holds the Director's recognized option set and the
// functional-options constructors used to build it, mirroring the teacher
// project's own PrepareSimulation/PrepareRunner option-switch idiom.
package config

import "time"

// Settings is the full recognized configuration surface of the Director.
type Settings struct {
	BoundedModelChecking  bool
	KInduction            bool
	InvariantGeneration   bool
	SmoothCounterexamples bool
	PdrMax                int

	ReadAdvice  string
	WriteAdvice string

	ReduceIvc   bool
	AllIvcs     bool
	AllAssigned bool

	Timeout time.Duration

	Excel       bool
	XML         bool
	XMLToStdout bool
	MiniJKind   bool
	Filename    string
}

// Option mutates Settings during construction.
type Option func(*Settings)

// New builds Settings from defaults, then applies each given option in
// order.
func New(opts ...Option) Settings {
	s := Settings{
		Filename: "jkind",
		Timeout:  0,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithBoundedModelChecking() Option { return func(s *Settings) { s.BoundedModelChecking = true } }
func WithKInduction() Option           { return func(s *Settings) { s.KInduction = true } }
func WithInvariantGeneration() Option  { return func(s *Settings) { s.InvariantGeneration = true } }
func WithSmoothCounterexamples() Option {
	return func(s *Settings) { s.SmoothCounterexamples = true }
}
func WithPdrMax(n int) Option { return func(s *Settings) { s.PdrMax = n } }
func WithReadAdvice(path string) Option { return func(s *Settings) { s.ReadAdvice = path } }
func WithWriteAdvice(path string) Option { return func(s *Settings) { s.WriteAdvice = path } }
func WithReduceIvc() Option     { return func(s *Settings) { s.ReduceIvc = true } }
func WithAllIvcs() Option       { return func(s *Settings) { s.AllIvcs = true } }
func WithAllAssigned() Option   { return func(s *Settings) { s.AllAssigned = true } }
func WithTimeout(d time.Duration) Option { return func(s *Settings) { s.Timeout = d } }
func WithExcel() Option         { return func(s *Settings) { s.Excel = true } }
func WithXML(toStdout bool) Option {
	return func(s *Settings) { s.XML = true; s.XMLToStdout = toStdout }
}
func WithMiniJKind() Option     { return func(s *Settings) { s.MiniJKind = true } }
func WithFilename(name string) Option { return func(s *Settings) { s.Filename = name } }

// PdrEnabled reports whether PDR is configured on, per spec (pdrMax >= 1).
func (s Settings) PdrEnabled() bool { return s.PdrMax >= 1 }
