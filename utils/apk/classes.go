package apk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/droidpack-tool/droidpack/utils/config"
	"github.com/droidpack-tool/droidpack/utils/fileio"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

// The glue surface is a fixed, versioned contract between this driver
// and the runtime shim it packages. Any drift must be an explicit edit
// of these tables, never implicit directory contents.
var (
	sourceGlueCode = []string{"MainActivity", "KeyCode"}

	compiledGlueCode = []string{
		"com/gluonhq/helloandroid/MainActivity",
		"com/gluonhq/helloandroid/MainActivity$1",
		"com/gluonhq/helloandroid/MainActivity$2",
		"com/gluonhq/helloandroid/MainActivity$3",
		"com/gluonhq/helloandroid/MainActivity$InternalSurfaceView",
		"javafx/scene/input/KeyCode",
		"javafx/scene/input/KeyCode$KeyCodeClass",
	}
)

const (
	precompiledLocation = "native/android/dalvik/precompiled/class/"
	sourceLocation      = "native/android/dalvik/source/"
)

// ClassProvider puts the glue bytecode into the staging class directory,
// either by copying precompiled classes or by compiling the glue sources
// against the platform jar.
type ClassProvider struct {
	project *config.Project
	layout  Layout
	runner  proc.Runner
}

func NewClassProvider(project *config.Project, layout Layout, runner proc.Runner) *ClassProvider {
	return &ClassProvider{project: project, layout: layout, runner: runner}
}

// Process stages the glue classes. The boolean mirrors the packaging
// pipeline convention: false means the bytecode compiler exited
// non-zero, anything exceptional is an error.
func (c *ClassProvider) Process(ctx context.Context, androidJar string) (bool, error) {
	if c.project.UsePrecompiledCode {
		if err := c.copyPrecompiledClasses(); err != nil {
			return false, err
		}
		return true, nil
	}
	code, err := c.compileGlueCode(ctx, androidJar)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

func (c *ClassProvider) copyPrecompiledClasses() error {
	for _, classFile := range compiledGlueCode {
		dst := filepath.Join(c.layout.Class(), filepath.FromSlash(classFile)+".class")
		if err := fileio.CopyFS(embedded, precompiledLocation+classFile+".class", dst); err != nil {
			return err
		}
	}
	return nil
}

func (c *ClassProvider) compileGlueCode(ctx context.Context, androidJar string) (int, error) {
	if err := os.MkdirAll(c.layout.AndroidSource(), 0o755); err != nil {
		return -1, err
	}
	for _, srcFile := range sourceGlueCode {
		dst := filepath.Join(c.layout.AndroidSource(), srcFile+".java")
		if err := fileio.CopyFS(embedded, sourceLocation+srcFile+".java", dst); err != nil {
			return -1, err
		}
	}

	// the dex converter only accepts legacy bytecode
	args := []string{
		"-d", c.layout.Class(),
		"-source", "1.7", "-target", "1.7",
		"-cp", c.layout.AndroidSource(),
		"-bootclasspath", androidJar,
	}
	for _, srcFile := range sourceGlueCode {
		args = append(args, filepath.Join(c.layout.AndroidSource(), srcFile+".java"))
	}
	return c.runner.Run(ctx, "glueCompile", proc.Options{}, c.project.Javac(), args...)
}
