// Package capability folds dependency presence flags into named feature
// flags. Derivation is a pure function of the flags: one declarative rule per
// capability, evaluated once at startup.
package capability

import (
	"strings"

	"pyctl/internal/probe"
)

// Set is the derived record of capability flags.
type Set struct {
	GPUMonitoring     bool `json:"gpu_monitoring"`
	QuantumRandom     bool `json:"quantum_random"`
	QuantumComputing  bool `json:"quantum_computing"`
	ImageProcessing   bool `json:"image_processing"`
	MachineLearning   bool `json:"machine_learning"`
	DeepLearning      bool `json:"deep_learning"`
	DataAnalysis      bool `json:"data_analysis"`
	Visualization     bool `json:"visualization"`
	Profiling         bool `json:"profiling"`
	CodeQuality       bool `json:"code_quality"`
	PackageManagement bool `json:"package_management"`
}

// rule maps one capability to a boolean expression over dependency flags:
// every allOf entry must be present, and at least one anyOf entry when the
// list is non-empty. suggest is offered when the capability is off.
type rule struct {
	name    string
	allOf   []probe.DependencyID
	anyOf   []probe.DependencyID
	suggest []string
	field   func(*Set) *bool
}

var rules = []rule{
	{
		name:    "GPU Monitoring",
		allOf:   []probe.DependencyID{probe.DepNvidiaSMI, probe.DepHostMetrics},
		suggest: []string{"GPUtil", "psutil"},
		field:   func(s *Set) *bool { return &s.GPUMonitoring },
	},
	{
		name:    "Quantum Random",
		allOf:   []probe.DependencyID{probe.DepQuantumRandom},
		suggest: []string{"quantumrandom"},
		field:   func(s *Set) *bool { return &s.QuantumRandom },
	},
	{
		name:    "Quantum Computing",
		allOf:   []probe.DependencyID{probe.DepQiskit},
		suggest: []string{"qiskit", "qiskit-aer"},
		field:   func(s *Set) *bool { return &s.QuantumComputing },
	},
	{
		name:    "Image Processing",
		allOf:   []probe.DependencyID{probe.DepOpenCV},
		suggest: []string{"opencv-python", "Pillow"},
		field:   func(s *Set) *bool { return &s.ImageProcessing },
	},
	{
		name:    "Machine Learning",
		allOf:   []probe.DependencyID{probe.DepSklearn, probe.DepNumpy},
		suggest: []string{"scikit-learn", "numpy", "pandas"},
		field:   func(s *Set) *bool { return &s.MachineLearning },
	},
	{
		name:    "Deep Learning",
		anyOf:   []probe.DependencyID{probe.DepTorch, probe.DepTensorflow},
		suggest: []string{"torch", "tensorflow"},
		field:   func(s *Set) *bool { return &s.DeepLearning },
	},
	{
		name:    "Data Analysis",
		allOf:   []probe.DependencyID{probe.DepPandas, probe.DepNumpy},
		suggest: []string{"pandas", "numpy", "scipy"},
		field:   func(s *Set) *bool { return &s.DataAnalysis },
	},
	{
		name:    "Visualization",
		allOf:   []probe.DependencyID{probe.DepMatplotlib},
		suggest: []string{"matplotlib", "seaborn", "plotly"},
		field:   func(s *Set) *bool { return &s.Visualization },
	},
	{
		name:    "Profiling",
		anyOf:   []probe.DependencyID{probe.DepProfiling, probe.DepMemProfiler, probe.DepLineProfiler},
		suggest: []string{"memory-profiler", "line-profiler", "py-spy"},
		field:   func(s *Set) *bool { return &s.Profiling },
	},
	{
		name:    "Code Quality",
		anyOf:   []probe.DependencyID{probe.DepPylint, probe.DepBlack, probe.DepIsort, probe.DepFlake8},
		suggest: []string{"pylint", "black", "isort", "flake8", "bandit"},
		field:   func(s *Set) *bool { return &s.CodeQuality },
	},
	{
		name:    "Package Management",
		anyOf:   []probe.DependencyID{probe.DepPoetry, probe.DepPipenv, probe.DepPipdeptree},
		suggest: []string{"poetry", "pipenv", "pipdeptree"},
		field:   func(s *Set) *bool { return &s.PackageManagement },
	},
}

func (r rule) eval(flags probe.Flags) bool {
	for _, id := range r.allOf {
		if !flags.Has(id) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, id := range r.anyOf {
		if flags.Has(id) {
			return true
		}
	}
	return false
}

// Derive evaluates every rule against flags and returns the capability set.
func Derive(flags probe.Flags) Set {
	var s Set
	for _, r := range rules {
		*r.field(&s) = r.eval(flags)
	}
	return s
}

// Enabled returns the names of enabled capabilities in rule order.
func (s Set) Enabled() []string {
	var out []string
	for _, r := range rules {
		if *r.field(&s) {
			out = append(out, r.name)
		}
	}
	return out
}

// Summary formats the set for logging.
func (s Set) Summary() string {
	caps := s.Enabled()
	if len(caps) == 0 {
		return "Basic functionality only"
	}
	return strings.Join(caps, ", ")
}

// Suggestions returns, for each disabled capability, the packages that would
// enable it. An all-true set yields an empty map.
func Suggestions(s Set) map[string][]string {
	out := make(map[string][]string)
	for _, r := range rules {
		if !*r.field(&s) {
			out[r.name] = append([]string(nil), r.suggest...)
		}
	}
	return out
}
