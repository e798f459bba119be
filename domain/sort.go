package domain

// SortOption is the listing order policy. Reaction-count orders break ties by
// newer createdAt first.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortMostLiked    SortOption = "mostLiked"
	SortMostDisliked SortOption = "mostDisliked"
)

// ParseSortOption maps a raw query value to a SortOption. Empty input falls
// back to SortNewest; anything else unknown is ErrBadParamInput.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case SortNewest, SortOldest, SortMostLiked, SortMostDisliked:
		return SortOption(s), nil
	case "":
		return SortNewest, nil
	default:
		return "", ErrBadParamInput
	}
}
