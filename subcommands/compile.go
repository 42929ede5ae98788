package subcommands

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils"
	"github.com/droidpack-tool/droidpack/utils/android/flags"
	"github.com/droidpack-tool/droidpack/utils/apk"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

type CompileCMD struct {
	Config string
}

func (*CompileCMD) Name() string     { return "compile" }
func (*CompileCMD) Synopsis() string { return "run the AOT compiler with the android target flags" }

func (c *CompileCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "droidpack.yaml", "project descriptor")
}

func (c *CompileCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *CompileCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := newBuild(c.Config)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := b.toolchain.CheckCompile(); err != nil {
		logrus.Error(err)
		return 1
	}
	if b.project.AOTCompiler == "" {
		logrus.Error("no aot-compiler configured in the project descriptor")
		return 1
	}

	capCache, err := apk.StageCapCache(b.paths.CapCachePath())
	if err != nil {
		logrus.Error(err)
		return 1
	}

	args := flags.AOTCompileFlags(b.project.TargetArch, capCache, b.toolchain.Linker)
	args = append(args, f.Args()...)
	code, err := b.runner.Run(ctx, "compile", proc.Options{Info: true}, b.project.AOTCompiler, args...)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if code != 0 {
		logrus.Errorf("compile exited with code %d", code)
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&CompileCMD{})
}
