// Package config loads the project descriptor the packaging pipeline is
// driven by. The descriptor is read once and treated as read-only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "droidpack.yaml"

// Project describes the application being packaged. All fields are fixed
// after Load returns.
type Project struct {
	AppName            string `yaml:"app-name"`
	AppID              string `yaml:"app-id"`
	TargetOS           string `yaml:"target-os"`
	TargetArch         string `yaml:"target-arch"`
	UseJavaFX          bool   `yaml:"javafx"`
	UsePrecompiledCode bool   `yaml:"precompiled-code"`

	// JDKRoot points at a JDK-compatible toolchain; <JDKRoot>/bin/javac
	// compiles the glue sources in source mode.
	JDKRoot string `yaml:"jdk-root"`

	// AOTCompiler is the ahead-of-time compiler driver executable used by
	// the compile verb. The driver is external to this tool.
	AOTCompiler string `yaml:"aot-compiler"`

	// JavaFXLibs holds the target-platform JavaFX native libraries
	// (libfreetype.so lives here).
	JavaFXLibs string `yaml:"javafx-libs"`

	ProjectDir string `yaml:"-"`
}

// Load reads the descriptor at path and fills in defaults. ProjectDir is
// the directory containing the descriptor.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project descriptor: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("project descriptor %s: %w", path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	p.ProjectDir = abs
	p.fillDefaults()
	if p.AppName == "" || p.AppID == "" {
		return nil, fmt.Errorf("project descriptor %s: app-name and app-id are required", path)
	}
	return &p, nil
}

func (p *Project) fillDefaults() {
	if p.TargetOS == "" {
		p.TargetOS = "android"
	}
	if p.TargetArch == "" {
		p.TargetArch = "aarch64"
	}
	if p.JDKRoot == "" {
		p.JDKRoot = os.Getenv("JAVA_HOME")
	}
}

// Javac is the bytecode compiler used for the glue sources.
func (p *Project) Javac() string {
	return filepath.Join(p.JDKRoot, "bin", "javac")
}

// LinkOutputName is the shared object the linker produces and the
// packaging pipeline embeds.
func (p *Project) LinkOutputName() string {
	return "lib" + p.AppName + ".so"
}
