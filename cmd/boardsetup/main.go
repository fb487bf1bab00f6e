package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/boardsetup-cli/boardsetup/internal/builder"
	"github.com/boardsetup-cli/boardsetup/internal/config"
	"github.com/boardsetup-cli/boardsetup/internal/executor"
	"github.com/boardsetup-cli/boardsetup/internal/menu"
	"github.com/boardsetup-cli/boardsetup/internal/precheck"
)

const version = "1.0.0"

// rootUID is the privileged-user sentinel; every operation the tool runs
// writes system state, so anything else is refused at startup.
const rootUID = 0

func main() {
	profileFlag := pflag.StringP("profile", "f", config.DefaultProfileFile, "Path to the provisioning profile")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Show operation output while running")
	initFlag := pflag.Bool("init", false, "Generate an example profile and exit")
	versionFlag := pflag.Bool("version", false, "Print version information")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "boardsetup - guided provisioning for board development hosts\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sudo boardsetup [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *versionFlag {
		fmt.Printf("boardsetup version %s\n", version)
		os.Exit(0)
	}

	if *initFlag {
		generator := config.NewTemplateGenerator()
		if err := generator.GenerateProfileTemplate(); err != nil {
			os.Stderr.WriteString("Error: " + err.Error() + "\n")
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Privilege precondition, checked before any side effect.
	if os.Geteuid() != rootUID {
		os.Stderr.WriteString("boardsetup must run with elevated privileges.\n")
		os.Stderr.WriteString("Re-run with: sudo boardsetup\n")
		os.Exit(1)
	}

	envCfg, err := config.LoadEnv()
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}

	profile, err := config.LoadProfileOrDefault(*profileFlag)
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}

	workDir, err := os.Getwd()
	if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	prompter, closePrompter := menu.NewPrompter(os.Stdout)
	defer closePrompter()

	checks := precheck.NewSystemChecker()
	b := builder.New(profile, envCfg, checks, prompter, os.Stdout)
	exec := executor.New(nil, *verboseFlag)

	controller := menu.NewController(menu.Options{
		Profile:   profile,
		Env:       envCfg,
		Builder:   b,
		Executor:  exec,
		Prompter:  prompter,
		Out:       os.Stdout,
		WorkDir:   workDir,
		ReportDir: workDir,
	})

	if err := controller.Run(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
