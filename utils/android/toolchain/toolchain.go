// Package toolchain locates the Android SDK/NDK pieces the packaging
// pipeline drives: the NDK's llvm linker and clang, the newest
// build-tools install, the platform jar and adb.
package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// PlatformAPI is the android.jar level the glue code is compiled and
// packaged against.
const PlatformAPI = "android-27"

// Toolchain holds the paths resolved once at driver construction. The
// value is immutable afterwards; a probe that finds nothing leaves the
// path empty, which only becomes an error when a stage needs it.
type Toolchain struct {
	SDKRoot string
	NDKRoot string
	HostTag string

	Linker   string // ld.lld under the NDK, "" if absent
	Compiler string // clang under the NDK, "" if absent
}

// Resolve probes the SDK and NDK roots. Roots come from the arguments
// when non-empty, else from ANDROID_SDK / ANDROID_NDK.
func Resolve(sdkRoot, ndkRoot string) *Toolchain {
	if sdkRoot == "" {
		sdkRoot = os.Getenv("ANDROID_SDK")
	}
	if ndkRoot == "" {
		ndkRoot = os.Getenv("ANDROID_NDK")
	}
	t := &Toolchain{
		SDKRoot: sdkRoot,
		NDKRoot: ndkRoot,
		HostTag: runtime.GOOS + "-x86_64",
	}
	if ndkRoot != "" {
		t.Linker = probe(t.prebuiltBin("ld.lld"))
		t.Compiler = probe(t.prebuiltBin("clang"))
	}
	logrus.Debugf("toolchain: sdk=%q ndk=%q linker=%q compiler=%q",
		t.SDKRoot, t.NDKRoot, t.Linker, t.Compiler)
	return t
}

func (t *Toolchain) prebuiltBin(tool string) string {
	return filepath.Join(t.NDKRoot, "toolchains", "llvm", "prebuilt", t.HostTag, "bin", tool)
}

func probe(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// CheckCompile gates the compile verb: every failing condition names the
// path that was expected, before any tool is spawned.
func (t *Toolchain) CheckCompile() error {
	if t.NDKRoot == "" {
		return fmt.Errorf("no Android NDK found, set the ANDROID_NDK environment variable")
	}
	if t.Linker == "" {
		return fmt.Errorf("the Android NDK at %s does not contain %s", t.NDKRoot, t.prebuiltBin("ld.lld"))
	}
	if t.Compiler == "" {
		return fmt.Errorf("the Android NDK at %s does not contain %s", t.NDKRoot, t.prebuiltBin("clang"))
	}
	return nil
}

// CheckLink gates the link verb.
func (t *Toolchain) CheckLink() error {
	if t.NDKRoot == "" {
		return fmt.Errorf("no Android NDK found, set the ANDROID_NDK environment variable")
	}
	if t.Compiler == "" {
		return fmt.Errorf("the Android NDK at %s does not contain %s", t.NDKRoot, t.prebuiltBin("clang"))
	}
	if t.SDKRoot == "" {
		return fmt.Errorf("no Android SDK found, set the ANDROID_SDK environment variable")
	}
	return nil
}

// CheckPackage gates packaging, which needs the SDK build tools only.
func (t *Toolchain) CheckPackage() error {
	if t.SDKRoot == "" {
		return fmt.Errorf("no Android SDK found, set the ANDROID_SDK environment variable")
	}
	return nil
}

// LatestBuildTools picks the highest-versioned directory under
// <sdk>/build-tools. Sibling directories that do not parse as versions
// are skipped. Equal-comparing directories would be interchangeable, the
// last one enumerated wins.
func (t *Toolchain) LatestBuildTools() (string, error) {
	dir := filepath.Join(t.SDKRoot, "build-tools")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("Android build tools not found under %s, install them and try again", dir)
	}
	var best Version
	found := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, ok := ParseVersion(e.Name())
		if !ok {
			continue
		}
		if !found || best.Less(v) {
			best = v
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("Android build tools not found under %s, install them and try again", dir)
	}
	return filepath.Join(dir, best.String()), nil
}

// BuildTool returns the path of one tool inside a build-tools directory.
func BuildTool(buildTools, name string) string {
	return filepath.Join(buildTools, name)
}

// PlatformJar is the android.jar for the fixed platform API level.
func (t *Toolchain) PlatformJar() string {
	return filepath.Join(t.SDKRoot, "platforms", PlatformAPI, "android.jar")
}

// ADB is the device bridge under the SDK's platform-tools.
func (t *Toolchain) ADB() string {
	return filepath.Join(t.SDKRoot, "platform-tools", "adb")
}
