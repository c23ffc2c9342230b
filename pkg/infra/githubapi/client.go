package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/branchscope/pkg/domain/interfaces"
	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/branchscope/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultAPIURL  types.GitHubAPIURL = "https://api.github.com"
	DefaultTimeout                    = 5 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	token     types.GitHubToken
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*config)

// WithToken sets a personal access token. Without it, requests are sent anonymously.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func New(apiURL types.GitHubAPIURL, options ...Option) (*Client, error) {
	cfg := &config{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if apiURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API URL is empty")
	}
	baseURL, err := url.Parse(string(apiURL))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub API URL",
			goerr.V("url", apiURL),
			goerr.V("error", err),
		)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API URL must be absolute", goerr.V("url", apiURL))
	}
	// go-github resolves endpoints relative to BaseURL, so it must end with a slash
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	if cfg.timeout < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "timeout must not be negative", goerr.V("timeout", cfg.timeout))
	}

	if cfg.token != "" {
		logging.Default().Info("Initialized GitHub client with token")
	} else {
		logging.Default().Info("No GitHub token, running without it. Requests may be limited")
	}

	httpClient := &http.Client{
		Timeout: cfg.timeout,
		Transport: &headerTransport{
			base:  cfg.transport,
			token: cfg.token,
		},
	}

	return &Client{httpClient: httpClient, baseURL: baseURL}, nil
}

// api returns a go-github client for a single call. go-github caches rate limit responses per instance, so an instance must not be shared between calls.
func (x *Client) api() *github.Client {
	client := github.NewClient(x.httpClient)
	baseURL := *x.baseURL
	client.BaseURL = &baseURL
	return client
}

// ListRepositories returns repositories of the user in upstream order. Forks are included.
func (x *Client) ListRepositories(ctx context.Context, username string) ([]*model.GitHubRepository, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "username is empty")
	}

	// https://docs.github.com/en/rest/repos/repos?apiVersion=2022-11-28#list-repositories-for-a-user
	repos, resp, err := x.api().Repositories.List(ctx, username, nil)

	switch classify(statusCode(resp), err, repos != nil) {
	case outcomeNotFound:
		logging.From(ctx).Info("No user found on GitHub", slog.String("username", username))
		return nil, goerr.Wrap(types.ErrUserNotFound, "no user found",
			goerr.V("username", username),
		)

	case outcomeUpstreamError:
		logging.From(ctx).Warn("Request for user repositories has returned error",
			slog.String("username", username),
			slog.Int("status", statusCode(resp)),
			slog.Any("error", err),
		)
		return nil, goerr.Wrap(types.ErrUpstream, "failed to list repositories",
			goerr.V("username", username),
			goerr.V("status", statusCode(resp)),
			goerr.V("cause", err),
		)
	}

	result := make([]*model.GitHubRepository, len(repos))
	for i, repo := range repos {
		result[i] = &model.GitHubRepository{
			Name:  repo.GetName(),
			Owner: model.Owner{Login: repo.GetOwner().GetLogin()},
			Fork:  repo.GetFork(),
		}
	}

	logging.From(ctx).Debug("Listed user repositories",
		slog.String("username", username),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// ListBranches returns branches of the repository in upstream order. A 404 is reported as types.ErrUpstream, not as types.ErrUserNotFound.
func (x *Client) ListBranches(ctx context.Context, owner, repo string) ([]model.Branch, error) {
	// https://docs.github.com/en/rest/branches/branches?apiVersion=2022-11-28#list-branches
	branches, resp, err := x.api().Repositories.ListBranches(ctx, owner, repo, nil)

	switch classify(statusCode(resp), err, branches != nil) {
	case outcomeNotFound, outcomeUpstreamError:
		logging.From(ctx).Warn("Request for repository branches has returned error",
			slog.String("owner", owner),
			slog.String("repo", repo),
			slog.Int("status", statusCode(resp)),
			slog.Any("error", err),
		)
		return nil, goerr.Wrap(types.ErrUpstream, "failed to list branches",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("status", statusCode(resp)),
			goerr.V("cause", err),
		)
	}

	result := make([]model.Branch, len(branches))
	for i, branch := range branches {
		result[i] = model.Branch{
			Name:       branch.GetName(),
			LastCommit: model.Commit{SHA: branch.GetCommit().GetSHA()},
		}
	}

	return result, nil
}
