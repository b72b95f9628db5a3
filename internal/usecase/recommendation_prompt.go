package usecase

import (
	"fmt"
	"strings"

	"linkup/internal/domain/job"
	"linkup/internal/domain/user"

	"github.com/google/uuid"
)

const promptJobsLimit = 10

// BuildRecommendationPrompt composes the natural-language prompt sent to the
// completion API: the user's profile, up to ten candidate jobs, and the JSON
// shape the reply should take.
func BuildRecommendationPrompt(profile user.User, jobs []job.Job, companyNames map[uuid.UUID]string, limit int) string {
	var b strings.Builder

	b.WriteString("Based on this user profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotSpecified(profile.Name))
	fmt.Fprintf(&b, "- Headline: %s\n", orNotSpecified(profile.Headline))
	fmt.Fprintf(&b, "- Location: %s\n", orNotSpecified(profile.Location))
	fmt.Fprintf(&b, "- About: %s\n", orNotSpecified(profile.About))

	fmt.Fprintf(&b, "\nRecommend the top %d jobs from these options:\n", limit)
	for _, j := range jobs[:min(promptJobsLimit, len(jobs))] {
		fmt.Fprintf(&b, "- %s at %s in %s\n", j.Title, companyLabel(j, companyNames), orNotSpecified(j.Location))
	}

	b.WriteString("\nProvide recommendations with match scores (0-100) and reasons.\n")
	b.WriteString(`Format as JSON: [{"jobId": "uuid", "matchScore": 85, "reasons": ["reason1", "reason2"]}]`)

	return b.String()
}

func orNotSpecified(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Not specified"
	}
	return s
}

func companyLabel(j job.Job, names map[uuid.UUID]string) string {
	if j.CompanyID == nil {
		return "Not specified"
	}
	if name, ok := names[*j.CompanyID]; ok && name != "" {
		return name
	}
	return j.CompanyID.String()
}
