package domain

// ProbeResult is the non-error outcome of a single category probe. Any failure other than
// "not in this category" is reported as an error alongside the result.
type ProbeResult int

const (
	// ProbeNotInCategory means the media service has no asset with the id under the category.
	ProbeNotInCategory ProbeResult = iota
	// ProbeMatched means the asset exists under the probed category.
	ProbeMatched
)

func (p ProbeResult) String() string {
	switch p {
	case ProbeMatched:
		return "matched"
	case ProbeNotInCategory:
		return "not_in_category"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resource-type resolution. Resolved is false when no probe
// matched and Category holds the fallback.
type Resolution struct {
	Category Category
	Resolved bool
	Probes   int
}
