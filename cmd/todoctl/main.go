package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const (
	appName string = "todoctl"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")

	err := newRootCmd(ctx, appVersion).ExecuteContext(ctx)

	cleanup()

	if err != nil {
		log.Debug("command failed", "err", err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
