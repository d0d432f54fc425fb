package main

import (
	"context"
	"os"

	logger "github.com/Subwoof01/sw-logger"
	"github.com/Subwoof01/sw-logger/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		_, _ = logger.Error(err.Error())
		os.Exit(1)
	}
}
