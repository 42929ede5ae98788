package apk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirsIdempotent(t *testing.T) {
	_, _, layout := testProject(t)
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	// content placed between calls must survive
	marker := filepath.Join(layout.Class(), "marker")
	writeFile(t, marker, "x")
	if err := layout.EnsureDirs(); err != nil {
		t.Fatalf("second EnsureDirs: %v", err)
	}
	for _, dir := range []string{layout.Bin(), layout.Class(), layout.Lib(), layout.LibArm64(), layout.AndroidSource()} {
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			t.Errorf("missing staging dir %s", dir)
		}
	}
	if _, err := os.Stat(marker); err != nil {
		t.Error("EnsureDirs deleted existing content")
	}
}

func TestArtifactNames(t *testing.T) {
	_, _, layout := testProject(t)
	if got, want := layout.UnalignedApk("Demo"), filepath.Join(layout.Bin(), "Demo.unaligned.apk"); got != want {
		t.Errorf("UnalignedApk = %q, want %q", got, want)
	}
	if got, want := layout.SignedApk("Demo"), filepath.Join(layout.Bin(), "Demo.apk"); got != want {
		t.Errorf("SignedApk = %q, want %q", got, want)
	}
	if got, want := layout.ClassesDex(), filepath.Join(layout.Bin(), "classes.dex"); got != want {
		t.Errorf("ClassesDex = %q, want %q", got, want)
	}
}
