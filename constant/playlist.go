package constant

// Sentinels used by the playlist parser and the channel catalog.
const (
	// AllGroups is the pseudo group that selects every channel of the catalog.
	AllGroups = "All"

	// Uncategorized is assigned to channels without a group-title attribute.
	Uncategorized = "uncategorized"

	// Untitled is assigned to channels whose metadata line carries no title.
	Untitled = "Untitled"
)
