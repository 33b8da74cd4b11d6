package cmd

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// RunConfig holds the defaults an optional .goxlang.yaml supplies for flags
// a user didn't set explicitly on the command line. Cobra flags always win
// when set; this only fills in what's left at its zero value.
type RunConfig struct {
	Trace      bool `yaml:"trace"`
	NoColor    bool `yaml:"no-color"`
	MemorySize int  `yaml:"memory-size"`
}

// defaultMemorySize mirrors bytecode.VM's own built-in starting size, so a
// missing or empty config file changes nothing.
const defaultMemorySize = 1024

// defaultRunConfig matches the VM's own built-in defaults, so a missing or
// empty config file changes nothing.
func defaultRunConfig() RunConfig {
	return RunConfig{MemorySize: defaultMemorySize}
}

// loadRunConfig looks for .goxlang.yaml in the current directory, then in
// $HOME, and decodes the first one found. A missing file is not an error —
// it just leaves the defaults in place.
func loadRunConfig() (RunConfig, error) {
	cfg := defaultRunConfig()

	for _, dir := range configSearchDirs() {
		path := filepath.Join(dir, ".goxlang.yaml")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, nil
}

func configSearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	}
	return dirs
}
