package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/chent01/riskreg/pkg/cli/config"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

func runWithFlags(t *testing.T, cfg *config.Logger, args []string) error {
	t.Helper()

	var confErr error
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			closer, err := cfg.Configure()
			if err != nil {
				confErr = err
				return nil
			}
			logging.Default().Debug("logger test entry", "key", "value")
			closer()
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		return err
	}
	return confErr
}

func TestLoggerConfigureJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var cfg config.Logger
	err := runWithFlags(t, &cfg, []string{
		"--log-level", "debug",
		"--log-format", "json",
		"--log-output", path,
	})
	gt.NoError(t, err).Required()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.String(t, string(data)).Contains("logger test entry")
}

func TestLoggerConfigureInvalidLevel(t *testing.T) {
	var cfg config.Logger
	err := runWithFlags(t, &cfg, []string{"--log-level", "verbose"})
	gt.Error(t, err)
}

func TestLoggerConfigureInvalidFormat(t *testing.T) {
	var cfg config.Logger
	err := runWithFlags(t, &cfg, []string{"--log-format", "xml"})
	gt.Error(t, err)
}
