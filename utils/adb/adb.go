// Package adb installs and launches the packaged application on a
// connected device through the SDK's device bridge.
package adb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils/proc"
)

// Tags the device log is filtered down to: the compiled application, the
// runtime attach layer, the activity manager and crash reports. The
// trailing *:S silences everything else.
var logcatTags = []string{
	"GraalCompiled:V", "GraalActivity:V",
	"GraalGluon:V", "GluonAttach:V",
	"AndroidRuntime:E", "ActivityManager:W", "*:S",
}

// Deployer drives adb against one signed apk.
type Deployer struct {
	adb    string
	appID  string
	apk    string
	runner proc.Runner
}

func NewDeployer(adbPath, appID, apkPath string, runner proc.Runner) *Deployer {
	return &Deployer{adb: adbPath, appID: appID, apk: apkPath, runner: runner}
}

// Install pushes the signed package onto the device, replacing any
// previous install.
func (d *Deployer) Install(ctx context.Context) error {
	if _, err := os.Stat(d.apk); err != nil {
		return fmt.Errorf("application not found at path %s", d.apk)
	}
	code, err := d.runner.Run(ctx, "install", proc.Options{Info: true}, d.adb,
		"install", "-r", d.apk)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("application installation failed")
	}
	return nil
}

// RunUntilEnd launches the application with a single synthetic input
// event and streams the device log while it runs. The log buffer is
// cleared before the launch command is issued so no stale lines show up;
// the stream itself has no end marker, so it runs under a context that
// is cancelled once the launch command completes.
func (d *Deployer) RunUntilEnd(ctx context.Context) error {
	streamCtx, stopStream := context.WithCancel(ctx)
	defer stopStream()

	cleared := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := d.runner.Run(streamCtx, "clearLog", proc.Options{}, d.adb, "logcat", "-c"); err != nil {
			logrus.Errorf("clearing device log: %v", err)
		}
		close(cleared)

		args := append([]string{"-d", "logcat", "-v", "brief"}, logcatTags...)
		_, err := d.runner.Run(streamCtx, "log", proc.Options{Line: printLogcatLine}, d.adb, args...)
		if err != nil && streamCtx.Err() == nil {
			logrus.Errorf("streaming device log: %v", err)
		}
	}()

	<-cleared
	code, err := d.runner.Run(ctx, "run", proc.Options{Info: true}, d.adb,
		"shell", "monkey", "-p", d.appID, "1")

	stopStream()
	wg.Wait()

	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("application starting failed")
	}
	return nil
}

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgGreen)
	dbgColor  = color.New(color.FgCyan)
)

// printLogcatLine colors a brief-format logcat line by its severity
// prefix ("E/AndroidRuntime( 1234): ...").
func printLogcatLine(line string) {
	if len(line) < 2 || !strings.HasPrefix(line[1:], "/") {
		fmt.Println(line)
		return
	}
	switch line[0] {
	case 'F', 'E':
		errColor.Println(line)
	case 'W':
		warnColor.Println(line)
	case 'I':
		infoColor.Println(line)
	case 'D':
		dbgColor.Println(line)
	default:
		fmt.Println(line)
	}
}
