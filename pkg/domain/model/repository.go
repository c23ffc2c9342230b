package model

// Owner is the account a repository belongs to
type Owner struct {
	Login string `json:"login"`
}

// Commit points to a specific commit of a repository
type Commit struct {
	SHA string `json:"sha"`
}

// Branch is a named pointer into a repository history. LastCommit is "commit" in the upstream payload.
type Branch struct {
	Name       string `json:"name"`
	LastCommit Commit `json:"lastCommit"`
}

// GitHubRepository is a repository as returned by the upstream API. Fork is used only for filtering.
type GitHubRepository struct {
	Name  string
	Owner Owner
	Fork  bool
}

// Repository is the aggregated unit returned to callers. Branches is never nil after aggregation.
type Repository struct {
	Name     string   `json:"name"`
	Owner    Owner    `json:"owner"`
	Branches []Branch `json:"branches"`
}

// NewRepository builds an aggregated repository from the raw one and its branches.
func NewRepository(raw *GitHubRepository, branches []Branch) *Repository {
	if branches == nil {
		branches = []Branch{}
	}
	return &Repository{
		Name:     raw.Name,
		Owner:    raw.Owner,
		Branches: branches,
	}
}
