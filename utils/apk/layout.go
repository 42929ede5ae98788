// Package apk stages, assembles and signs the installable package around
// the natively compiled application artifact.
package apk

import (
	"os"
	"path/filepath"
)

// Layout is the fixed staging tree under the gvm output root. All
// intermediate and final packaging files for one build live here;
// directories are created on demand and never cleaned by this tool.
type Layout struct {
	root string
}

func NewLayout(gvmPath string) Layout {
	return Layout{root: filepath.Join(gvmPath, "apk")}
}

func (l Layout) Root() string          { return l.root }
func (l Layout) Bin() string           { return filepath.Join(l.root, "bin") }
func (l Layout) Class() string         { return filepath.Join(l.root, "class") }
func (l Layout) Lib() string           { return filepath.Join(l.root, "lib") }
func (l Layout) LibArm64() string      { return filepath.Join(l.root, "lib", "arm64-v8a") }
func (l Layout) AndroidSource() string { return filepath.Join(l.root, "android-source") }
func (l Layout) Res() string           { return filepath.Join(l.root, "res") }

func (l Layout) Manifest() string   { return filepath.Join(l.root, "AndroidManifest.xml") }
func (l Layout) ClassesDex() string { return filepath.Join(l.Bin(), "classes.dex") }

// UnalignedApk and SignedApk are two of the three successive identities
// of the package; signing happens in place on the aligned file.
func (l Layout) UnalignedApk(appName string) string {
	return filepath.Join(l.Bin(), appName+".unaligned.apk")
}

func (l Layout) SignedApk(appName string) string {
	return filepath.Join(l.Bin(), appName+".apk")
}

// EnsureDirs creates the staging tree. Safe to call repeatedly, existing
// content is kept.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{
		l.root,
		l.Bin(),
		l.Class(),
		l.Lib(),
		l.LibArm64(),
		l.AndroidSource(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
