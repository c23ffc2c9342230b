package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/branchscope/pkg/cli/config"
	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/branchscope/pkg/utils/logging"
	"github.com/m-mizutani/branchscope/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func getCommand() *cli.Command {
	var (
		output string
		github config.GitHub
	)
	getFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output file path [-|<file>]",
			Value:       "-",
			Sources:     cli.EnvVars("BRANCHSCOPE_OUTPUT"),
			Destination: &output,
		},
	}

	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "Print non-fork repositories of a user with their branches as JSON",
		ArgsUsage: "<username>",
		Flags: slice.Flatten(
			getFlags,
			github.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			username := c.Args().First()
			if username == "" {
				return goerr.Wrap(types.ErrInvalidOption, "username is required")
			}

			logging.Default().Debug("starting get",
				slog.String("username", username),
				slog.String("output", output),
				slog.Any("GitHub", github),
			)

			uc, err := newUseCase(github)
			if err != nil {
				return err
			}

			repos, err := uc.ListUserRepositories(ctx, &model.ListUserRepositoriesInput{
				Username: username,
			})
			if err != nil {
				return err
			}

			if output == "-" {
				return writeRepositories(os.Stdout, repos)
			}

			fd, err := os.Create(filepath.Clean(output))
			if err != nil {
				return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
			}
			defer safe.Close(fd)

			return writeRepositories(fd, repos)
		},
	}
}

func writeRepositories(w io.Writer, repos []*model.Repository) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(repos); err != nil {
		return goerr.Wrap(err, "failed to write repositories")
	}
	return nil
}
