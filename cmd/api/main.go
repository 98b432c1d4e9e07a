package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/server"
)

// @title CourseHub API
// @version 1.0
// @description CRUD API for courses with soft delete

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the YAML config file",
		Value:   bootstrap.DefaultConfigPath,
		EnvVars: []string{"COURSEHUB_CONFIG"},
	}

	return &cli.App{
		Name:   "coursehub",
		Usage:  "course catalogue REST API",
		Flags:  []cli.Flag{configFlag},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply the database schema and exit",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "seed",
						Usage: "create the default courses on an empty catalogue",
					},
				},
				Action: migrate,
			},
		},
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.Context, c.String("config"))
	if err != nil {
		return err
	}

	if err := srv.Run(c.Context); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(c *cli.Context) error {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	database, err := bootstrap.OpenDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := bootstrap.Migrate(ctx, database, lgr); err != nil {
		return err
	}

	if !c.Bool("seed") {
		return nil
	}

	deps, err := bootstrap.BuildDependencies(database, lgr)
	if err != nil {
		return err
	}
	return bootstrap.Seed(ctx, deps)
}
