// info.go
package pyconfig

// Info is every configuration fact available for a handle.
// Python 3 only fields are empty on a Python 2 handle.
type Info struct {
	Program         string   `yaml:"program"`
	Version         string   `yaml:"version"`
	Prefix          string   `yaml:"prefix"`
	ExecPrefix      string   `yaml:"exec_prefix"`
	AbiFlags        string   `yaml:"abiflags,omitempty"`
	Includes        string   `yaml:"includes"`
	IncludePaths    []string `yaml:"include_paths"`
	CFlags          string   `yaml:"cflags"`
	Libs            string   `yaml:"libs"`
	LdFlags         string   `yaml:"ldflags"`
	ExtensionSuffix string   `yaml:"extension_suffix,omitempty"`
	ConfigDir       string   `yaml:"configdir,omitempty"`
}

type infoStep struct {
	dst *string
	fn  func() (string, error)
}

// Info runs every query valid for the handle's version and stops at the
// first failure.
func (py *PythonConfig) Info() (*Info, error) {
	info := &Info{Program: py.program}

	ver, err := py.SemanticVersion()
	if err != nil {
		return nil, err
	}
	info.Version = ver.String()

	steps := []infoStep{
		{&info.Prefix, py.Prefix},
		{&info.ExecPrefix, py.ExecPrefix},
		{&info.Includes, py.Includes},
		{&info.CFlags, py.CFlags},
		{&info.Libs, py.Libs},
		{&info.LdFlags, py.LdFlags},
	}
	if py.version == Three {
		steps = append(steps,
			infoStep{&info.AbiFlags, py.AbiFlags},
			infoStep{&info.ExtensionSuffix, py.ExtensionSuffix},
			infoStep{&info.ConfigDir, py.ConfigDir},
		)
	}

	for _, step := range steps {
		v, err := step.fn()
		if err != nil {
			return nil, err
		}
		*step.dst = v
	}

	if info.IncludePaths, err = py.IncludePaths(); err != nil {
		return nil, err
	}

	return info, nil
}
