package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jmorganca/suspendline/cmd"
	"github.com/jmorganca/suspendline/envconfig"
)

func main() {
	if err := cmd.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	envconfig.LoadConfig()

	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
