package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/branchscope/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ListUserRepositories returns non-fork repositories of the user with their branches. Repository order follows the upstream list and branch order follows each branch list.
// Any failure aborts the whole request: types.ErrUserNotFound when the user does not exist, types.ErrUpstream otherwise. Partial results are never returned.
func (x *UseCase) ListUserRepositories(ctx context.Context, input *model.ListUserRepositoriesInput) ([]*model.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.New("GitHub client is required")
	}

	logger := logging.From(ctx)
	logger.Info("Listing repositories and branches of user", slog.String("username", input.Username))

	repos, err := x.clients.GitHub().ListRepositories(ctx, input.Username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories of user",
			goerr.V("username", input.Username),
		)
	}

	sources := filterForks(ctx, repos)
	result := make([]*model.Repository, len(sources))
	if len(sources) == 0 {
		logger.Info("No repository to list branches", slog.String("username", input.Username))
		return result, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.branchConcurrency)

	for i, repo := range sources {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return goerr.Wrap(types.ErrUpstream, "aborted before listing branches",
					goerr.V("owner", repo.Owner.Login),
					goerr.V("repo", repo.Name),
				)
			}

			branches, err := x.clients.GitHub().ListBranches(egCtx, repo.Owner.Login, repo.Name)
			if err != nil {
				return toUpstreamError(err, repo)
			}

			// each goroutine owns exactly one slot
			result[i] = model.NewRepository(repo, branches)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Successfully listed repositories and branches of user",
		slog.String("username", input.Username),
		slog.Int("repositories", len(result)),
	)

	return result, nil
}

func filterForks(ctx context.Context, repos []*model.GitHubRepository) []*model.GitHubRepository {
	sources := make([]*model.GitHubRepository, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			logging.From(ctx).Debug("Skipping forked repository",
				slog.String("owner", repo.Owner.Login),
				slog.String("repo", repo.Name),
			)
			continue
		}
		sources = append(sources, repo)
	}
	return sources
}

// toUpstreamError makes a branch listing failure an upstream error even if the client reported it as not found.
func toUpstreamError(err error, repo *model.GitHubRepository) error {
	if errors.Is(err, types.ErrUpstream) {
		return goerr.Wrap(err, "failed to list branches",
			goerr.V("owner", repo.Owner.Login),
			goerr.V("repo", repo.Name),
		)
	}

	return goerr.Wrap(types.ErrUpstream, "failed to list branches",
		goerr.V("owner", repo.Owner.Login),
		goerr.V("repo", repo.Name),
		goerr.V("cause", err),
	)
}
