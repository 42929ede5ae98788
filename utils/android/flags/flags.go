// Package flags assembles the fixed argument sets handed to the AOT
// compiler and the linker when targeting Android. Everything here is
// pure data, no process is ever spawned from this package.
package flags

import "path/filepath"

// Glue sources compiled into the launcher shared object alongside the
// AOT output. The lists are a versioned contract with the runtime shim;
// drift must be an explicit edit here.
var (
	AdditionalSourceFiles = []string{"launcher.c", "javafx_adapter.c", "touch_events.c", "glibc_shim.c", "attach_adapter.c"}
	AdditionalHeaderFiles = []string{"grandroid.h"}
)

var cFlags = []string{"-target", "aarch64-linux-android", "-I."}

var linkFlags = []string{
	"-target", "aarch64-linux-android21", "-fPIC", "-fuse-ld=gold",
	"-Wl,--rosegment,--gc-sections,-z,noexecstack", "-shared",
	"-landroid", "-llog", "-lffi", "-llibchelper",
}

// The JavaFX runtime libraries are pulled in whole; without the
// whole-archive bracketing the linker would drop symbols only reached
// through reflection.
var javafxLinkFlags = []string{
	"-Wl,--whole-archive",
	"-lprism_es2_monocle", "-lglass_monocle", "-ljavafx_font_freetype", "-ljavafx_iio",
	"-Wl,--no-whole-archive",
	"-lGLESv2", "-lEGL", "-lfreetype",
}

// CCompileFlags are the target-specific C compiler flags.
func CCompileFlags() []string {
	return append([]string{}, cFlags...)
}

// AOTCompileFlags are the target-specific flags for the ahead-of-time
// compiler: llvm backend, single-isolate heap policy, the target arch
// macro, the capability cache and the custom linker override.
func AOTCompileFlags(targetArch, capCacheDir, linkerPath string) []string {
	return []string{
		"-H:CompilerBackend=llvm",
		"-H:-SpawnIsolates",
		"-Dsvm.targetArch=" + targetArch,
		"-H:+UseOnlyWritableBootImageHeap",
		"-H:+UseCAPCache",
		"-H:CAPCacheDir=" + capCacheDir,
		"-H:CustomLD=" + linkerPath,
	}
}

// LinkFlags are the target-specific linker flags, extended with the
// JavaFX runtime set when the UI runtime is in use.
func LinkFlags(useJavaFX bool) []string {
	out := append([]string{}, linkFlags...)
	if useJavaFX {
		out = append(out, javafxLinkFlags...)
	}
	return out
}

// LinkOutputFlags name the shared object the linker must produce.
func LinkOutputFlags(appDir, outputName string) []string {
	return []string{"-o", filepath.Join(appDir, outputName)}
}

// WholeArchiveFlags brackets the given static libraries so every symbol
// survives into the link output.
func WholeArchiveFlags(libDir string, libs []string) []string {
	out := make([]string, 0, len(libs)+2)
	out = append(out, "-Wl,--whole-archive")
	for _, lib := range libs {
		out = append(out, filepath.Join(libDir, lib))
	}
	out = append(out, "-Wl,--no-whole-archive")
	return out
}
