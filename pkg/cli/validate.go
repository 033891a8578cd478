package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/chent01/riskreg/pkg/cli/config"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var projectCfg config.Project

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a project requirements file",
		Flags:   projectCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			project, err := projectCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "project validation failed")
			}

			byType := make(map[string]int)
			for _, req := range project.Requirements {
				byType[req.Type.String()]++
			}

			logger.Info("Project validation passed",
				"path", projectCfg.Path(),
				"project", project.Name,
				"requirements", len(project.Requirements),
				"by_type", byType,
			)
			return nil
		},
	}
}
