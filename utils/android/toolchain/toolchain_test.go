package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func fakeNDK(t *testing.T, tools ...string) string {
	t.Helper()
	ndk := t.TempDir()
	bin := filepath.Join(ndk, "toolchains", "llvm", "prebuilt", runtime.GOOS+"-x86_64", "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, tool := range tools {
		if err := os.WriteFile(filepath.Join(bin, tool), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return ndk
}

func TestResolveProbesNDK(t *testing.T) {
	ndk := fakeNDK(t, "ld.lld", "clang")
	tc := Resolve("", ndk)
	if tc.Linker == "" || tc.Compiler == "" {
		t.Fatalf("linker/compiler not found: %+v", tc)
	}
	if err := tc.CheckCompile(); err != nil {
		t.Errorf("CheckCompile() = %v", err)
	}
}

func TestResolveMissingToolsIsNotAnError(t *testing.T) {
	ndk := fakeNDK(t) // empty bin dir
	tc := Resolve("", ndk)
	if tc.Linker != "" || tc.Compiler != "" {
		t.Fatalf("probe invented tools: %+v", tc)
	}
}

func TestCheckCompileNamesExpectedPath(t *testing.T) {
	ndk := fakeNDK(t, "clang")
	tc := Resolve("", ndk)
	err := tc.CheckCompile()
	if err == nil {
		t.Fatal("want error for missing ld.lld")
	}
	if !strings.Contains(err.Error(), "ld.lld") {
		t.Errorf("error %q does not name the missing linker", err)
	}
}

func TestCheckLink(t *testing.T) {
	ndk := fakeNDK(t, "ld.lld", "clang")

	tc := Resolve("", ndk)
	tc.SDKRoot = ""
	if err := tc.CheckLink(); err == nil {
		t.Error("want error for missing SDK")
	}

	tc = Resolve(t.TempDir(), ndk)
	if err := tc.CheckLink(); err != nil {
		t.Errorf("CheckLink() = %v", err)
	}
}

func TestSDKPaths(t *testing.T) {
	tc := &Toolchain{SDKRoot: filepath.Join("/", "opt", "sdk")}
	if got, want := tc.ADB(), filepath.Join("/", "opt", "sdk", "platform-tools", "adb"); got != want {
		t.Errorf("ADB() = %q, want %q", got, want)
	}
	if !strings.Contains(tc.PlatformJar(), PlatformAPI) {
		t.Errorf("PlatformJar() = %q does not use %s", tc.PlatformJar(), PlatformAPI)
	}
}
