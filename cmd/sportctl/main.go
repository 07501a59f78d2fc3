package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"config.yaml" env:"SPORTAPP_CONFIG"`

	Migrate MigrateCmd `cmd:"" help:"Create or update the database schema."`
	Seed    SeedCmd    `cmd:"" help:"Load a workout catalog from a TOML file."`
	Info    InfoCmd    `cmd:"" help:"Print the resolved configuration without secrets."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sportctl"),
		kong.Description("Maintenance commands for the sportapp database"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&Context{ConfigPath: CLI.Config}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
