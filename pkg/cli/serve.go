package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/chent01/riskreg/pkg/cli/config"
	httpctrl "github.com/chent01/riskreg/pkg/controller/http"
	"github.com/chent01/riskreg/pkg/repository/memory"
	"github.com/chent01/riskreg/pkg/service/oracle"
	"github.com/chent01/riskreg/pkg/usecase"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var projectPath string
	var batchSize int
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKREG_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Project requirements file to assess at startup (optional)",
			Sources:     cli.EnvVars("RISKREG_PROJECT"),
			Destination: &projectPath,
		},
		&cli.IntFlag{
			Name:        "batch-size",
			Usage:       "Requirements per oracle request",
			Sources:     cli.EnvVars("RISKREG_BATCH_SIZE"),
			Destination: &batchSize,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server exposing generated risk registers",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			repo := memory.New()

			var ucOpts []usecase.Option
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient != nil {
				source, err := oracle.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to create hazard oracle")
				}
				ucOpts = append(ucOpts, usecase.WithHazardSource(source))
			} else {
				logger.Info("Gemini not configured, using heuristic identification only")
			}

			uc := usecase.New(repo, ucOpts...)

			// Assess the project at startup so the server has something
			// to serve.
			if projectPath != "" {
				project, err := config.LoadProjectFile(projectPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load project file")
				}

				size := batchSize
				if size <= 0 {
					size = project.BatchSize
				}

				register, err := uc.Register.Generate(ctx, project.Name, project.Requirements, size)
				if err != nil {
					return goerr.Wrap(err, "failed to generate risk register")
				}
				logger.Info("Initial risk register generated",
					"runID", register.RunID,
					"risks", len(register.Items),
				)
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(repo),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
			}

			logger.Info("Server stopped")
			return nil
		},
	}
}
