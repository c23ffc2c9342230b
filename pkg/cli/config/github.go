package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/branchscope/pkg/infra/githubapi"
	"github.com/m-mizutani/branchscope/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	apiURL            string
	token             types.GitHubToken `masq:"secret"`
	timeout           time.Duration
	branchConcurrency int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Base URL of GitHub REST API",
			Category:    "GitHub",
			Value:       string(githubapi.DefaultAPIURL),
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("BRANCHSCOPE_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token. Anonymous access if not set",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("BRANCHSCOPE_GITHUB_TOKEN"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub API request",
			Category:    "GitHub",
			Value:       githubapi.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("BRANCHSCOPE_GITHUB_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "branch-concurrency",
			Usage:       "Max number of concurrent branch listing requests per user (1 means sequential)",
			Category:    "GitHub",
			Value:       usecase.DefaultBranchConcurrency,
			Destination: &x.branchConcurrency,
			Sources:     cli.EnvVars("BRANCHSCOPE_BRANCH_CONCURRENCY"),
		},
	}
}

// New creates GitHub API client. Empty or invalid API URL is a configuration error.
func (x GitHub) New() (*githubapi.Client, error) {
	return githubapi.New(types.GitHubAPIURL(x.apiURL),
		githubapi.WithToken(x.token),
		githubapi.WithTimeout(x.timeout),
	)
}

func (x GitHub) UseCaseOptions() ([]usecase.Option, error) {
	if x.branchConcurrency < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "branch concurrency must be 1 or more",
			goerr.V("value", x.branchConcurrency),
		)
	}

	return []usecase.Option{
		usecase.WithBranchConcurrency(int(x.branchConcurrency)),
	}, nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("APIURL", x.apiURL),
		slog.Int("token.len", len(x.token)),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("BranchConcurrency", x.branchConcurrency),
	)
}
