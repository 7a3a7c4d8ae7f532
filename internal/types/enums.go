package types

import (
	"fmt"
	"strings"
)

type ProjectType string

const (
	ProjectTypeOnline ProjectType = "Online"
	ProjectTypeOnsite ProjectType = "Onsite"
	ProjectTypeHybrid ProjectType = "Hybrid"
)

var projectTypes = []ProjectType{ProjectTypeOnline, ProjectTypeOnsite, ProjectTypeHybrid}

// ParseProjectType maps a wire label onto a ProjectType. Matching ignores case.
func ParseProjectType(label string) (ProjectType, error) {
	for _, t := range projectTypes {
		if strings.EqualFold(strings.TrimSpace(label), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown project type %q", label)
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

var applicationStatuses = []ApplicationStatus{ApplicationPending, ApplicationAccepted, ApplicationRejected}

// ParseApplicationStatus maps a wire label onto an ApplicationStatus.
// Matching ignores case; anything else is an error.
func ParseApplicationStatus(label string) (ApplicationStatus, error) {
	for _, s := range applicationStatuses {
		if strings.EqualFold(strings.TrimSpace(label), string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", label)
}

type VolunteerStatus string

const (
	VolunteerActive   VolunteerStatus = "Active"
	VolunteerInactive VolunteerStatus = "Inactive"
)

// VolunteerStatusOrActive reads a stored roster status. Values outside the
// enumeration are reported as Active.
func VolunteerStatusOrActive(stored string) VolunteerStatus {
	switch {
	case strings.EqualFold(stored, string(VolunteerInactive)):
		return VolunteerInactive
	default:
		return VolunteerActive
	}
}

type NotificationType string

const (
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationApplicationAccepted NotificationType = "application_accepted"
	NotificationApplicationRejected NotificationType = "application_rejected"
	NotificationProjectMatch        NotificationType = "project_match"
	NotificationVolunteerJoined     NotificationType = "volunteer_joined"
	NotificationEventReminder       NotificationType = "event_reminder"
)
