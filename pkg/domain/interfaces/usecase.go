package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/branchscope/pkg/domain/model"
)

type UseCase interface {
	ListUserRepositories(ctx context.Context, input *model.ListUserRepositoriesInput) ([]*model.Repository, error)
}
