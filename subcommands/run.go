package subcommands

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils"
	"github.com/droidpack-tool/droidpack/utils/adb"
	"github.com/droidpack-tool/droidpack/utils/apk"
)

type RunCMD struct {
	Config string
}

func (*RunCMD) Name() string     { return "run" }
func (*RunCMD) Synopsis() string { return "launch the installed app and stream its device log" }

func (c *RunCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "droidpack.yaml", "project descriptor")
}

func (c *RunCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *RunCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := newBuild(c.Config)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := b.toolchain.CheckPackage(); err != nil {
		logrus.Error(err)
		return 1
	}

	layout := apk.NewLayout(b.paths.GvmPath())
	deployer := adb.NewDeployer(b.toolchain.ADB(), b.project.AppID, layout.SignedApk(b.project.AppName), b.runner)
	if err := deployer.RunUntilEnd(ctx); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&RunCMD{})
}
