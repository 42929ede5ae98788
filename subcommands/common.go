// Package subcommands holds the driver verbs: compile, link, package,
// install, run.
package subcommands

import (
	"github.com/droidpack-tool/droidpack/utils/android/toolchain"
	"github.com/droidpack-tool/droidpack/utils/config"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

// build is the per-invocation wiring shared by all verbs: the loaded
// project, the derived paths and the toolchain resolved once up front.
type build struct {
	project   *config.Project
	paths     *config.Paths
	toolchain *toolchain.Toolchain
	runner    proc.Runner
}

func newBuild(configPath string) (*build, error) {
	project, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &build{
		project:   project,
		paths:     config.NewPaths(project),
		toolchain: toolchain.Resolve("", ""),
		runner:    proc.ExecRunner{},
	}, nil
}
