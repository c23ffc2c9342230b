package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/branchscope/pkg/domain/model"
	"github.com/m-mizutani/branchscope/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewRepository(t *testing.T) {
	raw := &model.GitHubRepository{
		Name:  "Hello-World",
		Owner: model.Owner{Login: "octocat"},
		Fork:  false,
	}

	t.Run("keeps branches in given order", func(t *testing.T) {
		repo := model.NewRepository(raw, []model.Branch{
			{Name: "master", LastCommit: model.Commit{SHA: "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"}},
			{Name: "develop", LastCommit: model.Commit{SHA: "7fd1a60b01f91b314f59955a4e4d4e80d8edf11d"}},
		})
		gt.V(t, repo.Name).Equal("Hello-World")
		gt.V(t, repo.Owner.Login).Equal("octocat")
		gt.A(t, repo.Branches).Length(2)
		gt.V(t, repo.Branches[0].Name).Equal("master")
		gt.V(t, repo.Branches[1].Name).Equal("develop")
	})

	t.Run("nil branches become empty array", func(t *testing.T) {
		repo := model.NewRepository(raw, nil)
		gt.V(t, repo.Branches != nil).Equal(true)

		data := gt.R1(json.Marshal(repo)).NoError(t)
		gt.S(t, string(data)).Contains(`"branches":[]`)
	})
}

func TestRepositoryJSON(t *testing.T) {
	repo := model.NewRepository(&model.GitHubRepository{
		Name:  "Hello-World",
		Owner: model.Owner{Login: "octocat"},
		Fork:  false,
	}, []model.Branch{
		{Name: "master", LastCommit: model.Commit{SHA: "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"}},
	})

	data := gt.R1(json.Marshal(repo)).NoError(t)
	gt.V(t, string(data)).Equal(`{"name":"Hello-World","owner":{"login":"octocat"},"branches":[{"name":"master","lastCommit":{"sha":"c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"}}]}`)
	gt.S(t, string(data)).NotContains("fork")
}

func TestListUserRepositoriesInputValidate(t *testing.T) {
	t.Run("valid username passes", func(t *testing.T) {
		input := &model.ListUserRepositoriesInput{Username: "octocat"}
		gt.NoError(t, input.Validate())
	})

	t.Run("empty username fails", func(t *testing.T) {
		input := &model.ListUserRepositoriesInput{}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	for _, username := range []string{".", "..", "octo/cat", "octo?cat", "octo#cat"} {
		t.Run("username "+username+" fails", func(t *testing.T) {
			input := &model.ListUserRepositoriesInput{Username: username}
			err := input.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}

	t.Run("username with underscore passes", func(t *testing.T) {
		input := &model.ListUserRepositoriesInput{Username: "some_user"}
		gt.NoError(t, input.Validate())
	})
}
