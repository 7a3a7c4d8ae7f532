package types

import "strings"

const ContextUserKey = "user"

const (
	DefaultProjectImageURL = "/volunteer-project.jpg"

	DefaultPageLimit = 100
	MaxPageLimit     = 200

	DefaultWindowDays = 30
	MaxWindowDays     = 365

	// DefaultVolunteerHours stands in for a roster entry with no recorded hours.
	DefaultVolunteerHours = 15
	// ImpactPerVolunteer weights the overview impact score.
	ImpactPerVolunteer = 50
	TopSkillsLimit     = 5
	UncategorizedLabel = "Uncategorized"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
)

// AllowedOrigins merges the development defaults with CLIENT_URL and the
// comma separated ALLOWED_ORIGINS list.
func AllowedOrigins(clientURL, allowedOrigins string) []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(allowedOrigins, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

