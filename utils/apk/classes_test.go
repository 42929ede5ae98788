package apk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessPrecompiledCopiesFixedList(t *testing.T) {
	p, _, layout := testProject(t)
	p.UsePrecompiledCode = true
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}

	ok, err := NewClassProvider(p, layout, runner).Process(context.Background(), "/sdk/android.jar")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Process() = false")
	}
	if len(runner.calls) != 0 {
		t.Errorf("precompiled mode spawned %d tools", len(runner.calls))
	}
	for _, classFile := range compiledGlueCode {
		dst := filepath.Join(layout.Class(), filepath.FromSlash(classFile)+".class")
		if _, err := os.Stat(dst); err != nil {
			t.Errorf("missing staged class %s", dst)
		}
	}
	// nothing beyond the fixed list
	count := 0
	filepath.Walk(layout.Class(), func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			count++
		}
		return nil
	})
	if count != len(compiledGlueCode) {
		t.Errorf("staged %d classes, want %d", count, len(compiledGlueCode))
	}
}

func TestProcessSourceModeInvokesJavac(t *testing.T) {
	p, _, layout := testProject(t)
	p.UsePrecompiledCode = false
	p.JDKRoot = filepath.Join("/", "opt", "jdk")
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}

	ok, err := NewClassProvider(p, layout, runner).Process(context.Background(), "/sdk/android.jar")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Process() = false")
	}
	if len(runner.calls) != 1 {
		t.Fatalf("want exactly one compiler invocation, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if call.name != p.Javac() {
		t.Errorf("compiler = %q, want %q", call.name, p.Javac())
	}
	joined := strings.Join(call.args, " ")
	for _, want := range []string{"-source 1.7", "-target 1.7", "-bootclasspath /sdk/android.jar"} {
		if !strings.Contains(joined, want) {
			t.Errorf("javac args %q missing %q", joined, want)
		}
	}
	for _, srcFile := range sourceGlueCode {
		src := filepath.Join(layout.AndroidSource(), srcFile+".java")
		if _, err := os.Stat(src); err != nil {
			t.Errorf("glue source %s not staged", src)
		}
	}
}

func TestProcessSourceModeCompilerFailure(t *testing.T) {
	p, _, layout := testProject(t)
	p.UsePrecompiledCode = false
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{exits: map[string]int{"glueCompile": 1}}

	ok, err := NewClassProvider(p, layout, runner).Process(context.Background(), "/sdk/android.jar")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Process() = true although the compiler failed")
	}
}
