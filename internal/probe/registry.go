package probe

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
)

const (
	DepHostMetrics   DependencyID = "psutil"
	DepRequests      DependencyID = "requests"
	DepNumpy         DependencyID = "numpy"
	DepNvidiaSMI     DependencyID = "GPUtil"
	DepQuantumRandom DependencyID = "quantumrandom"
	DepQiskit        DependencyID = "qiskit"
	DepMatplotlib    DependencyID = "matplotlib"
	DepOpenCV        DependencyID = "opencv-python"
	DepTorch         DependencyID = "torch"
	DepTensorflow    DependencyID = "tensorflow"
	DepPandas        DependencyID = "pandas"
	DepScipy         DependencyID = "scipy"
	DepSklearn       DependencyID = "scikit-learn"
	DepJoblib        DependencyID = "joblib"
	DepJSONLines     DependencyID = "jsonlines"
	DepTOML          DependencyID = "toml"
	DepYAML          DependencyID = "PyYAML"
	DepVirtualenv    DependencyID = "virtualenv"
	DepConda         DependencyID = "conda"
	DepPoetry        DependencyID = "poetry"
	DepPipenv        DependencyID = "pipenv"
	DepPipdeptree    DependencyID = "pipdeptree"
	DepSafety        DependencyID = "safety"
	DepBandit        DependencyID = "bandit"
	DepPylint        DependencyID = "pylint"
	DepBlack         DependencyID = "black"
	DepIsort         DependencyID = "isort"
	DepFlake8        DependencyID = "flake8"
	DepProfiling     DependencyID = "profiling"
	DepMemProfiler   DependencyID = "memory-profiler"
	DepLineProfiler  DependencyID = "line-profiler"
)

var stdVersionArgs = [][]string{{"--version"}, {"-v"}, {"version"}}

// Registry is the fixed set of optional dependencies probed at startup.
// Library-only packages resolve through pip metadata; tools with binaries are
// looked up in PATH first with pip metadata as fallback.
var Registry = []DependencyInfo{
	{ID: DepHostMetrics, DisplayName: "psutil (host metrics)", Kind: KindNative, Native: probeHostMetrics},
	{ID: DepRequests, DisplayName: "requests", Kind: KindPip, Package: "requests"},
	{ID: DepNumpy, DisplayName: "numpy", Kind: KindPip, Package: "numpy"},
	{ID: DepNvidiaSMI, DisplayName: "GPUtil (nvidia-smi)", Kind: KindBinary, Package: "GPUtil",
		Binaries: []string{"nvidia-smi"}, VersionArgs: [][]string{{"--version"}}},
	{ID: DepQuantumRandom, DisplayName: "quantumrandom", Kind: KindPip, Package: "quantumrandom"},
	{ID: DepQiskit, DisplayName: "qiskit", Kind: KindPip, Package: "qiskit"},
	{ID: DepMatplotlib, DisplayName: "matplotlib", Kind: KindPip, Package: "matplotlib"},
	{ID: DepOpenCV, DisplayName: "OpenCV (opencv-python)", Kind: KindPip, Package: "opencv-python"},
	{ID: DepTorch, DisplayName: "PyTorch (torch)", Kind: KindPip, Package: "torch"},
	{ID: DepTensorflow, DisplayName: "TensorFlow", Kind: KindPip, Package: "tensorflow"},
	{ID: DepPandas, DisplayName: "pandas", Kind: KindPip, Package: "pandas"},
	{ID: DepScipy, DisplayName: "scipy", Kind: KindPip, Package: "scipy"},
	{ID: DepSklearn, DisplayName: "scikit-learn", Kind: KindPip, Package: "scikit-learn"},
	{ID: DepJoblib, DisplayName: "joblib", Kind: KindPip, Package: "joblib"},
	{ID: DepJSONLines, DisplayName: "jsonlines", Kind: KindPip, Package: "jsonlines"},
	{ID: DepTOML, DisplayName: "toml", Kind: KindPip, Package: "toml"},
	{ID: DepYAML, DisplayName: "PyYAML", Kind: KindPip, Package: "PyYAML"},
	{ID: DepVirtualenv, DisplayName: "virtualenv", Kind: KindBinary, Package: "virtualenv",
		Binaries: []string{"virtualenv"}, VersionArgs: stdVersionArgs},
	{ID: DepConda, DisplayName: "conda", Kind: KindBinary, Package: "conda",
		Binaries: []string{"conda"}, VersionArgs: stdVersionArgs},
	{ID: DepPoetry, DisplayName: "Poetry", Kind: KindBinary, Package: "poetry",
		Binaries: []string{"poetry"}, VersionArgs: stdVersionArgs},
	{ID: DepPipenv, DisplayName: "Pipenv", Kind: KindBinary, Package: "pipenv",
		Binaries: []string{"pipenv"}, VersionArgs: stdVersionArgs},
	{ID: DepPipdeptree, DisplayName: "pipdeptree", Kind: KindBinary, Package: "pipdeptree",
		Binaries: []string{"pipdeptree"}, VersionArgs: stdVersionArgs},
	{ID: DepSafety, DisplayName: "Safety", Kind: KindBinary, Package: "safety",
		Binaries: []string{"safety"}, VersionArgs: stdVersionArgs},
	{ID: DepBandit, DisplayName: "Bandit", Kind: KindBinary, Package: "bandit",
		Binaries: []string{"bandit"}, VersionArgs: stdVersionArgs},
	{ID: DepPylint, DisplayName: "Pylint", Kind: KindBinary, Package: "pylint",
		Binaries: []string{"pylint"}, VersionArgs: stdVersionArgs},
	{ID: DepBlack, DisplayName: "Black", Kind: KindBinary, Package: "black",
		Binaries: []string{"black"}, VersionArgs: stdVersionArgs},
	{ID: DepIsort, DisplayName: "isort", Kind: KindBinary, Package: "isort",
		Binaries: []string{"isort"}, VersionArgs: stdVersionArgs},
	{ID: DepFlake8, DisplayName: "Flake8", Kind: KindBinary, Package: "flake8",
		Binaries: []string{"flake8"}, VersionArgs: stdVersionArgs},
	{ID: DepProfiling, DisplayName: "profiling", Kind: KindPip, Package: "profiling"},
	{ID: DepMemProfiler, DisplayName: "memory-profiler", Kind: KindPip, Package: "memory-profiler"},
	{ID: DepLineProfiler, DisplayName: "line-profiler", Kind: KindPip, Package: "line-profiler"},
}

// probeHostMetrics verifies that host resource readings work on this platform.
func probeHostMetrics(ctx context.Context) (string, error) {
	if _, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		return "", err
	}
	return "", nil
}
