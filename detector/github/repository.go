package github

// Repository is the subset of repository metadata the scanner cares about.
type Repository struct {
	// Owner is the account that owns the repository
	Owner string
	// Name is the repository name without the owner prefix
	Name string
	// FullName is the "owner/name" form used in all reporting
	FullName string
	// Fork indicates the repository is a fork of another repository
	Fork bool
	// Archived indicates the repository has been archived
	Archived bool
}

func (r Repository) String() string {
	return r.FullName
}

// Filter removes forks and archived repositories unless explicitly included.
func Filter(repositories []Repository, includeForks, includeArchived bool) []Repository {
	filtered := make([]Repository, 0, len(repositories))
	for _, repo := range repositories {
		if repo.Fork && !includeForks {
			continue
		}
		if repo.Archived && !includeArchived {
			continue
		}
		filtered = append(filtered, repo)
	}
	return filtered
}
