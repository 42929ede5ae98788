package subcommands

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils"
	"github.com/droidpack-tool/droidpack/utils/android/flags"
	"github.com/droidpack-tool/droidpack/utils/fileio"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

type LinkCMD struct {
	Config string
}

func (*LinkCMD) Name() string     { return "link" }
func (*LinkCMD) Synopsis() string { return "link the AOT output into lib<AppName>.so" }

func (c *LinkCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "droidpack.yaml", "project descriptor")
}

func (c *LinkCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *LinkCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := newBuild(c.Config)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := b.toolchain.CheckLink(); err != nil {
		logrus.Error(err)
		return 1
	}

	objectFile, err := fileio.FindFile(b.paths.GvmPath(), "llvm.o")
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if objectFile == "" {
		logrus.Errorf("no llvm.o found under %s, run compile first", b.paths.GvmPath())
		return 1
	}
	if err := os.MkdirAll(b.paths.AppPath(), 0o755); err != nil {
		logrus.Error(err)
		return 1
	}

	args := flags.LinkFlags(b.project.UseJavaFX)
	args = append(args, flags.LinkOutputFlags(b.paths.AppPath(), b.project.LinkOutputName())...)
	args = append(args, objectFile)
	args = append(args, f.Args()...)
	code, err := b.runner.Run(ctx, "link", proc.Options{Info: true}, b.toolchain.Compiler, args...)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if code != 0 {
		logrus.Errorf("link exited with code %d", code)
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&LinkCMD{})
}
