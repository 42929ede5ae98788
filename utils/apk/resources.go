package apk

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils/config"
	"github.com/droidpack-tool/droidpack/utils/fileio"
)

//go:embed all:native
var embedded embed.FS

const manifestFile = "AndroidManifest.xml"

// Placeholders in the embedded default manifest, rewritten with the real
// application id and name when the default is used.
const (
	placeholderAppID   = "package='com.gluonhq.helloandroid'"
	placeholderAppName = "A HelloGraal"
)

// IconFolders are the six mandatory launcher icon density buckets.
var IconFolders = []string{
	"mipmap-hdpi", "mipmap-ldpi", "mipmap-mdpi",
	"mipmap-xhdpi", "mipmap-xxhdpi", "mipmap-xxxhdpi",
}

// Resources finds or generates the manifest and icon set and copies them
// into the staging tree.
type Resources struct {
	project *config.Project
	paths   *config.Paths
	layout  Layout
}

func NewResources(project *config.Project, paths *config.Paths, layout Layout) *Resources {
	return &Resources{project: project, paths: paths, layout: layout}
}

// Prepare returns the directory holding the authoritative manifest and
// res/ tree. A user manifest under src/<targetOS> wins as-is; otherwise
// the embedded defaults are copied under gensrc/<targetOS>, with the
// manifest placeholders substituted.
func (r *Resources) Prepare() (string, error) {
	targetSourcePath := filepath.Join(r.paths.SourcePath(), r.project.TargetOS)
	userManifest := filepath.Join(targetSourcePath, manifestFile)
	if _, err := os.Stat(userManifest); err == nil {
		return targetSourcePath, nil
	}

	androidPath := filepath.Join(r.paths.GenPath(), r.project.TargetOS)
	genManifest := filepath.Join(androidPath, manifestFile)
	logrus.Debugf("copy %s to %s", manifestFile, genManifest)
	if err := fileio.CopyFS(embedded, "native/android/"+manifestFile, genManifest); err != nil {
		return "", err
	}
	if err := fileio.ReplaceInFile(genManifest, placeholderAppID, "package='"+r.project.AppID+"'"); err != nil {
		return "", err
	}
	if err := fileio.ReplaceInFile(genManifest, placeholderAppName, r.project.AppName); err != nil {
		return "", err
	}

	androidResources := filepath.Join(androidPath, "res")
	logrus.Debugf("copy assets to %s", androidResources)
	for _, iconFolder := range IconFolders {
		src := "native/android/assets/res/" + iconFolder + "/ic_launcher.png"
		dst := filepath.Join(androidResources, iconFolder, "ic_launcher.png")
		if err := fileio.CopyFS(embedded, src, dst); err != nil {
			return "", err
		}
	}
	logrus.Infof("default Android resources generated in %s, consider copying them to %s before modifying them", androidPath, targetSourcePath)
	return androidPath, nil
}

// CopyManifest places the manifest into the staging tree under its fixed
// name.
func (r *Resources) CopyManifest(androidPath string) error {
	manifest := filepath.Join(androidPath, manifestFile)
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("file %s not found", manifest)
	}
	return fileio.CopyFile(manifest, r.layout.Manifest())
}

// CopyAssets copies the launcher icon for every density bucket. Every
// bucket is mandatory.
func (r *Resources) CopyAssets(androidPath string) error {
	for _, iconFolder := range IconFolders {
		icon := filepath.Join(androidPath, "res", iconFolder, "ic_launcher.png")
		if _, err := os.Stat(icon); err != nil {
			return fmt.Errorf("file %s not found", icon)
		}
		dst := filepath.Join(r.layout.Res(), iconFolder, "ic_launcher.png")
		if err := fileio.CopyFile(icon, dst); err != nil {
			return err
		}
	}
	return nil
}
