package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/chent01/riskreg/pkg/cli/config"
	"github.com/chent01/riskreg/pkg/repository/memory"
	"github.com/chent01/riskreg/pkg/service/export"
	"github.com/chent01/riskreg/pkg/service/oracle"
	"github.com/chent01/riskreg/pkg/usecase"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

func cmdGenerate() *cli.Command {
	var projectCfg config.Project
	var geminiCfg config.Gemini
	var outputDir string
	var batchSize int
	var includeMetadata bool

	var flags []cli.Flag
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory for the exported register files",
			Value:       "output",
			Sources:     cli.EnvVars("RISKREG_OUTPUT"),
			Destination: &outputDir,
		},
		&cli.IntFlag{
			Name:        "batch-size",
			Usage:       "Requirements per oracle request (overrides project file)",
			Sources:     cli.EnvVars("RISKREG_BATCH_SIZE"),
			Destination: &batchSize,
		},
		&cli.BoolFlag{
			Name:        "include-metadata",
			Usage:       "Include per-item metadata in the JSON export",
			Sources:     cli.EnvVars("RISKREG_INCLUDE_METADATA"),
			Destination: &includeMetadata,
		},
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate a risk register from a project requirements file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			project, err := projectCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load project file")
			}

			ucOpts := []usecase.Option{
				usecase.WithExporter(export.New(export.WithMetadata(includeMetadata))),
			}

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

			uc := usecase.New(memory.New(), ucOpts...)

			size := batchSize
			if size <= 0 {
				size = project.BatchSize
			}

			register, err := uc.Register.Generate(ctx, project.Name, project.Requirements, size)
			if err != nil {
				return goerr.Wrap(err, "failed to generate risk register")
			}

			if err := os.MkdirAll(outputDir, 0750); err != nil {
				return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
			}

			paths, err := uc.Export.WriteRegister(ctx, register, outputDir)
			if err != nil {
				return goerr.Wrap(err, "failed to export risk register")
			}

			logger.Info("Risk register generated",
				"project", project.Name,
				"risks", len(register.Items),
				"skipped", register.SkippedCandidates,
				"method", register.IdentificationMethod,
				"files", paths,
			)
			return nil
		},
	}
}
