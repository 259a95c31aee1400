// Package career holds the create/read/update/delete services for the
// per-profile career entities. They share one shape: validate enum
// fields against the closed vocabularies, check the owning profile
// exists on create, and delegate the rest to the repository.
package career

// pageToRange converts 1-based page/limit query values into the
// limit/offset pair the repositories take.
func pageToRange(page, limit int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
