package main

import (
	"github.com/richinsley/goseascape/log"
	"github.com/urfave/cli"
)

var logger = log.New("goseascape")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if err := log.SetModuleLevels(ctx.GlobalString("log-modules")); err != nil {
		logger.Warningf("Ignoring --log-modules: %v", err)
	}
}
