package config

import "path/filepath"

// Paths computes the fixed on-disk locations used during a build. The
// tree is rooted at <project>/target and mirrors what earlier stages of
// the pipeline (the AOT compile and link) already produce.
type Paths struct {
	ProjectDir string
	AppName    string
}

func NewPaths(p *Project) *Paths {
	return &Paths{ProjectDir: p.ProjectDir, AppName: p.AppName}
}

// SourcePath is where user-supplied, target-scoped sources live
// (<project>/src/<targetOS> holds a hand-written manifest, if any).
func (p *Paths) SourcePath() string {
	return filepath.Join(p.ProjectDir, "src")
}

// GenPath holds generated sources and default resources.
func (p *Paths) GenPath() string {
	return filepath.Join(p.ProjectDir, "target", "gensrc")
}

// GvmPath is the root of all native-image and packaging output.
func (p *Paths) GvmPath() string {
	return filepath.Join(p.ProjectDir, "target", "gvm")
}

// AppPath is where the linker drops lib<AppName>.so.
func (p *Paths) AppPath() string {
	return filepath.Join(p.GvmPath(), p.AppName)
}

// CapCachePath holds the staged compiler capability cache.
func (p *Paths) CapCachePath() string {
	return filepath.Join(p.GvmPath(), "capcache")
}
