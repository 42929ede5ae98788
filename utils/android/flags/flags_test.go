package flags

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAOTCompileFlags(t *testing.T) {
	got := AOTCompileFlags("aarch64", "/tmp/capcache", "/ndk/bin/ld.lld")
	joined := strings.Join(got, " ")
	for _, want := range []string{
		"-H:CompilerBackend=llvm",
		"-Dsvm.targetArch=aarch64",
		"-H:CAPCacheDir=/tmp/capcache",
		"-H:CustomLD=/ndk/bin/ld.lld",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("flags %q missing %q", joined, want)
		}
	}
}

func TestLinkFlagsJavaFX(t *testing.T) {
	base := LinkFlags(false)
	fx := LinkFlags(true)
	if len(fx) <= len(base) {
		t.Fatalf("javafx link flags not appended: %d vs %d", len(fx), len(base))
	}
	for i, f := range base {
		if fx[i] != f {
			t.Fatalf("base flags not a prefix of the javafx set at %d: %q vs %q", i, fx[i], f)
		}
	}
	joined := strings.Join(fx, " ")
	whole := strings.Index(joined, "-Wl,--whole-archive")
	noWhole := strings.Index(joined, "-Wl,--no-whole-archive")
	if whole < 0 || noWhole < whole {
		t.Errorf("javafx libs not whole-archive bracketed: %q", joined)
	}
	if strings.Contains(strings.Join(base, " "), "prism") {
		t.Error("base link flags contain javafx libraries")
	}
}

func TestLinkFlagsCopies(t *testing.T) {
	a := LinkFlags(false)
	a[0] = "mutated"
	b := LinkFlags(false)
	if b[0] == "mutated" {
		t.Error("LinkFlags returns shared backing storage")
	}
}

func TestWholeArchiveFlags(t *testing.T) {
	got := WholeArchiveFlags("/libs", []string{"liba.a", "libb.a"})
	want := []string{
		"-Wl,--whole-archive",
		filepath.Join("/libs", "liba.a"),
		filepath.Join("/libs", "libb.a"),
		"-Wl,--no-whole-archive",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flag %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinkOutputFlags(t *testing.T) {
	got := LinkOutputFlags("/out", "libDemo.so")
	if got[0] != "-o" || got[1] != filepath.Join("/out", "libDemo.so") {
		t.Errorf("LinkOutputFlags = %v", got)
	}
}
