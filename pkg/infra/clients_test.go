package infra_test

import (
	"testing"

	"github.com/m-mizutani/branchscope/pkg/domain/mock"
	"github.com/m-mizutani/branchscope/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// GitHub should be nil without configuration
		gt.V(t, clients.GitHub()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})
}
