package main

import (
	"context"
	"log"
	"os"

	"github.com/akulinin/campusmarket/internal/buildinfo"
	"github.com/akulinin/campusmarket/internal/client/cli"
	"github.com/akulinin/campusmarket/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
