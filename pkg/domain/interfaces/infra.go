package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/branchscope/pkg/domain/model"
)

// GitHub is the upstream source-hosting API. Every returned error wraps either types.ErrUserNotFound or types.ErrUpstream.
type GitHub interface {
	ListRepositories(ctx context.Context, username string) ([]*model.GitHubRepository, error)
	ListBranches(ctx context.Context, owner, repo string) ([]model.Branch, error)
}
