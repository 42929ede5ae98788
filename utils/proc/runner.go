package proc

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils"
)

// Options control where a tool runs and where its output goes.
type Options struct {
	// Dir is the working directory, load-bearing for tools that take
	// archive entry names relative to it.
	Dir string

	// Info echoes the tool's output at info level instead of debug.
	Info bool

	// Line, if set, receives every output line instead of the logger.
	Line func(string)
}

// Runner executes one external tool and reports its exit code. A non-zero
// exit is not an error; the error return is reserved for failures to spawn
// or to read output. Tests inject fakes to avoid spawning anything.
type Runner interface {
	Run(ctx context.Context, task string, opts Options, name string, arg ...string) (int, error)
}

// ExecRunner runs tools with os/exec, streaming combined stdout/stderr
// line by line.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, task string, opts Options, name string, arg ...string) (int, error) {
	log := logrus.WithFields(logrus.Fields{"task": task, "session": utils.SessionID})
	log.Debugf("exec: %s %s", name, strings.Join(arg, " "))

	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = opts.Dir

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if opts.Line != nil {
				opts.Line(line)
				continue
			}
			if opts.Info {
				log.Info(line)
			} else {
				log.Debug(line)
			}
		}
	}()

	if err := cmd.Start(); err != nil {
		pw.Close()
		<-done
		return -1, err
	}
	err := cmd.Wait()
	pw.Close()
	<-done

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debugf("%s exited with %d", name, exitErr.ExitCode())
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
