package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mleone/stockctl/pkg/application/services"
	"github.com/mleone/stockctl/pkg/infrastructure/repositories/jsonfile"
	"github.com/mleone/stockctl/pkg/interfaces/cli/commands"
)

const dataDirEnv = "STOCKCTL_DATA_DIR"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// A .env in the working directory may set STOCKCTL_DATA_DIR.
	_ = godotenv.Load()

	cmd, err := commands.Parse(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Help must work even when the data directory is unreadable.
	if help, ok := cmd.(*commands.HelpCommand); ok {
		return help.Run(ctx, nil, os.Stdout)
	}

	dataDir := os.Getenv(dataDirEnv)
	if dataDir == "" {
		dataDir = "."
	}

	store := jsonfile.NewStore(dataDir)
	svc, err := services.NewInventoryService(ctx, store)
	if err != nil {
		return err
	}

	return cmd.Run(ctx, svc, os.Stdout)
}
