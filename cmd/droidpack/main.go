package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/droidpack-tool/droidpack/utils"

	_ "github.com/droidpack-tool/droidpack/subcommands"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var version string

func main() {
	debug := flag.Bool("debug", false, "debug mode")
	flag.Parse()
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if version != "" {
		logrus.Infof("droidpack version: %s", version)
	}
	logrus.Debugf("build session: %s", utils.SessionID)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.ImportantFlag("debug")

	if flag.NArg() < 1 {
		fmt.Println("Available commands:")
		for name, cmd := range utils.ValidCMDs {
			fmt.Printf("\t%s\t%s\n", name, cmd.Synopsis())
		}
		fmt.Printf("Use '%s <command>' to run a command\n", os.Args[0])
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		logrus.Info("Exiting")
		cancel()
	}()

	os.Exit(int(subcommands.Execute(ctx)))
}
