package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/branchscope/pkg/domain/mock"
	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/infra"
	"github.com/m-mizutani/branchscope/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("non-positive concurrency falls back to sequential", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, username string) ([]*model.GitHubRepository, error) {
				return []*model.GitHubRepository{
					{Name: "a", Owner: model.Owner{Login: username}},
					{Name: "b", Owner: model.Owner{Login: username}},
				}, nil
			},
			ListBranchesFunc: func(ctx context.Context, owner, repo string) ([]model.Branch, error) {
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)), usecase.WithBranchConcurrency(0))

		repos := gt.R1(uc.ListUserRepositories(context.Background(), &model.ListUserRepositoriesInput{
			Username: "octocat",
		})).NoError(t)
		gt.A(t, repos).Length(2)
	})
}
