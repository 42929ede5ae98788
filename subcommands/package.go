package subcommands

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils"
	"github.com/droidpack-tool/droidpack/utils/apk"
)

type PackageCMD struct {
	Config string
}

func (*PackageCMD) Name() string     { return "package" }
func (*PackageCMD) Synopsis() string { return "assemble, align and sign the apk" }

func (c *PackageCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "droidpack.yaml", "project descriptor")
}

func (c *PackageCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *PackageCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := newBuild(c.Config)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := b.toolchain.CheckPackage(); err != nil {
		logrus.Error(err)
		return 1
	}

	buildTools, err := b.toolchain.LatestBuildTools()
	if err != nil {
		logrus.Error(err)
		return 1
	}
	androidJar := b.toolchain.PlatformJar()

	layout := apk.NewLayout(b.paths.GvmPath())
	if err := layout.EnsureDirs(); err != nil {
		logrus.Error(err)
		return 1
	}

	resources := apk.NewResources(b.project, b.paths, layout)
	androidPath, err := resources.Prepare()
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := resources.CopyManifest(androidPath); err != nil {
		logrus.Error(err)
		return 1
	}
	if err := resources.CopyAssets(androidPath); err != nil {
		logrus.Error(err)
		return 1
	}

	classes := apk.NewClassProvider(b.project, layout, b.runner)
	ok, err := classes.Process(ctx, androidJar)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if !ok {
		logrus.Error("glue code compilation failed")
		return 1
	}

	assembler := apk.NewAssembler(b.project, b.paths, layout, buildTools, androidJar, b.runner)
	ok, err = assembler.PackageApp(ctx)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if !ok {
		logrus.Error("packaging failed")
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&PackageCMD{})
}
