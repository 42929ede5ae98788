package apk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/droidpack-tool/droidpack/utils/config"
	"github.com/droidpack-tool/droidpack/utils/proc"
)

type fakeCall struct {
	task string
	name string
	args []string
	dir  string
}

// fakeRunner records every invocation and answers with configured exit
// codes, so pipeline ordering can be asserted without spawning tools.
type fakeRunner struct {
	calls []fakeCall
	exits map[string]int
}

func (f *fakeRunner) Run(_ context.Context, task string, opts proc.Options, name string, arg ...string) (int, error) {
	f.calls = append(f.calls, fakeCall{task: task, name: name, args: arg, dir: opts.Dir})
	if f.exits != nil {
		return f.exits[task], nil
	}
	return 0, nil
}

func (f *fakeRunner) tasks() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.task
	}
	return out
}

func testProject(t *testing.T) (*config.Project, *config.Paths, Layout) {
	t.Helper()
	p := &config.Project{
		AppName:            "Demo",
		AppID:              "com.example.demo",
		TargetOS:           "android",
		TargetArch:         "aarch64",
		UsePrecompiledCode: true,
		ProjectDir:         t.TempDir(),
	}
	paths := config.NewPaths(p)
	return p, paths, NewLayout(paths.GvmPath())
}

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}
