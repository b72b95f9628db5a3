package usecase

import (
	"fmt"
	"strings"
)

// JobSearchCacheKey derives a stable redis key from the normalized search
// parameters.
func JobSearchCacheKey(params JobSearchParams) string {
	remote := "any"
	if params.RemoteWork != nil {
		remote = fmt.Sprintf("%t", *params.RemoteWork)
	}

	return fmt.Sprintf(
		"jobs:search:q=%s:loc=%s:type=%s:remote=%s:page=%d:limit=%d",
		normalizeKeyPart(params.Query),
		normalizeKeyPart(params.Location),
		normalizeKeyPart(params.JobType),
		remote,
		params.Page,
		params.Limit,
	)
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, " ", "_")
}
