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

type InstallCMD struct {
	Config string
}

func (*InstallCMD) Name() string     { return "install" }
func (*InstallCMD) Synopsis() string { return "install the signed apk on a connected device" }

func (c *InstallCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "droidpack.yaml", "project descriptor")
}

func (c *InstallCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *InstallCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := deployer.Install(ctx); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&InstallCMD{})
}
