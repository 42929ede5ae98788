package apk

import (
	"os"
	"path/filepath"

	"github.com/droidpack-tool/droidpack/utils/fileio"
)

// Precomputed capability cache consumed by the AOT compiler through
// -H:CAPCacheDir. Fixed table, same contract as the glue code lists.
var capFiles = []string{
	"AArch64LibCHelperDirectives.cap",
	"AMD64LibCHelperDirectives.cap",
	"BuiltinDirectives.cap",
	"JNIHeaderDirectives.cap",
	"LibFFIHeaderDirectives.cap",
	"LLVMDirectives.cap",
	"PosixDirectives.cap",
}

const capLocation = "native/android/cap/"

// StageCapCache copies the embedded .cap files into dir and returns dir.
func StageCapCache(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	for _, capFile := range capFiles {
		if err := fileio.CopyFS(embedded, capLocation+capFile, filepath.Join(dir, capFile)); err != nil {
			return "", err
		}
	}
	return dir, nil
}
