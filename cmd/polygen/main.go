package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	goversion "github.com/caarlos0/go-version"

	"github.com/toyz/polygen/internal/cli"
)

// Set by the release build.
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const (
	description = "Generate source files in many languages from one object model."
	website     = "https://github.com/toyz/polygen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, buildVersion(version, commit, date, builtBy, treeState), os.Args[1:])
	stop()
	os.Exit(code)
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("polygen", description, website),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
