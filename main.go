package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/calyptia/getmein/commands"
	"github.com/calyptia/getmein/exitcode"
	"github.com/calyptia/getmein/logger"
)

func main() {
	_ = godotenv.Load()

	cmd := commands.NewRootCmd()
	if err := commands.Execute(context.Background(), cmd, os.Args[1:]); err != nil {
		logger.New(os.Stderr, false).Error(err)
		os.Exit(exitcode.From(err))
	}
}
