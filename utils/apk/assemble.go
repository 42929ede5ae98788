package apk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils/config"
	"github.com/droidpack-tool/droidpack/utils/fileio"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

// Assembler drives the build tools that turn the staged artifacts into a
// signed package: aapt, dx, zipalign, apksigner. The stages form one
// linear pipeline; the first non-zero exit short-circuits the rest and
// PackageApp returns false. Errors are reserved for missing inputs and
// other conditions no build tool was even asked about.
type Assembler struct {
	project    *config.Project
	paths      *config.Paths
	layout     Layout
	buildTools string
	androidJar string
	runner     proc.Runner
	keystore   *Keystore
}

func NewAssembler(project *config.Project, paths *config.Paths, layout Layout, buildTools, androidJar string, runner proc.Runner) *Assembler {
	return &Assembler{
		project:    project,
		paths:      paths,
		layout:     layout,
		buildTools: buildTools,
		androidJar: androidJar,
		runner:     runner,
		keystore:   NewKeystore(runner),
	}
}

func (a *Assembler) tool(name string) string {
	return filepath.Join(a.buildTools, name)
}

// PackageApp runs the assembly pipeline against an already staged tree:
// resource package, dex conversion and injection, native lib injection,
// alignment, signing.
func (a *Assembler) PackageApp(ctx context.Context) (bool, error) {
	unalignedApk := a.layout.UnalignedApk(a.project.AppName)
	alignedApk := a.layout.SignedApk(a.project.AppName)

	for _, stage := range []struct {
		name string
		run  func(context.Context) (int, error)
	}{
		{"aaptPackage", func(ctx context.Context) (int, error) { return a.aaptPackage(ctx, unalignedApk) }},
		{"dx", a.dx},
		{"aaptAddDxClasses", func(ctx context.Context) (int, error) { return a.aaptAddDxClasses(ctx, unalignedApk) }},
		{"aaptAddNativeLibs", func(ctx context.Context) (int, error) { return a.aaptAddNativeLibs(ctx, unalignedApk) }},
		{"zipalign", func(ctx context.Context) (int, error) { return a.zipAlign(ctx, unalignedApk, alignedApk) }},
		{"sign", func(ctx context.Context) (int, error) { return a.sign(ctx, alignedApk) }},
	} {
		code, err := stage.run(ctx)
		if err != nil {
			return false, err
		}
		if code != 0 {
			logrus.Errorf("%s exited with code %d", stage.name, code)
			return false, nil
		}
	}
	logrus.Infof("packaged %s", alignedApk)
	return true, nil
}

func (a *Assembler) aaptPackage(ctx context.Context, unalignedApk string) (int, error) {
	return a.runner.Run(ctx, "aaptPackage", proc.Options{}, a.tool("aapt"),
		"package", "-f", "-m", "-F", unalignedApk,
		"-M", a.layout.Manifest(),
		"-S", a.layout.Res(),
		"-I", a.androidJar)
}

func (a *Assembler) dx(ctx context.Context) (int, error) {
	return a.runner.Run(ctx, "dx", proc.Options{}, a.tool("dx"),
		"--dex", "--output="+a.layout.ClassesDex(), a.layout.Class())
}

// the added entry name is relative, so dx output is injected from bin/
func (a *Assembler) aaptAddDxClasses(ctx context.Context, unalignedApk string) (int, error) {
	return a.runner.Run(ctx, "aaptAddDxClasses", proc.Options{Dir: a.layout.Bin()},
		a.tool("aapt"), "add", unalignedApk, "classes.dex")
}

func (a *Assembler) aaptAddNativeLibs(ctx context.Context, unalignedApk string) (int, error) {
	appLib := filepath.Join(a.paths.AppPath(), a.project.LinkOutputName())
	if _, err := os.Stat(appLib); err != nil {
		return -1, fmt.Errorf("application library not found at %s, run link first", appLib)
	}
	if err := fileio.CopyFile(appLib, filepath.Join(a.layout.LibArm64(), "libsubstrate.so")); err != nil {
		return -1, err
	}
	args := []string{"add", unalignedApk, "lib/arm64-v8a/libsubstrate.so"}

	if a.project.UseJavaFX {
		freetype := filepath.Join(a.project.JavaFXLibs, "libfreetype.so")
		if _, err := os.Stat(freetype); err != nil {
			return -1, fmt.Errorf("file %s not found", freetype)
		}
		if err := fileio.CopyFile(freetype, filepath.Join(a.layout.LibArm64(), "libfreetype.so")); err != nil {
			return -1, err
		}
		args = append(args, "lib/arm64-v8a/libfreetype.so")
	}

	// entry names are relative to the apk staging root
	return a.runner.Run(ctx, "aaptAddNativeLibs", proc.Options{Dir: a.layout.Root()},
		a.tool("aapt"), args...)
}

func (a *Assembler) zipAlign(ctx context.Context, unalignedApk, alignedApk string) (int, error) {
	return a.runner.Run(ctx, "zipalign", proc.Options{}, a.tool("zipalign"),
		"-f", "4", unalignedApk, alignedApk)
}

func (a *Assembler) sign(ctx context.Context, alignedApk string) (int, error) {
	keystore, err := a.keystore.Ensure(ctx)
	if err != nil {
		return -1, err
	}
	// debug-only identity, never a release signing path
	return a.runner.Run(ctx, "sign", proc.Options{}, a.tool("apksigner"),
		"sign", "--ks", keystore,
		"--ks-key-alias", debugKeyAlias,
		"--ks-pass", "pass:"+debugStorePass,
		"--key-pass", "pass:"+debugKeyPass,
		alignedApk)
}
