package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
)

// AnalyticsService computes read-only rollups over the caller's own projects
// for a lookback window of days.
type AnalyticsService struct {
	store *store.Store
	now   Clock
}

func NewAnalyticsService(s *store.Store) *AnalyticsService {
	return &AnalyticsService{store: s, now: utcNow}
}

// Threshold is the start of a window of days ending at now, in UTC.
func Threshold(now time.Time, days int) time.Time {
	return now.UTC().Add(-time.Duration(ClampDays(days)) * 24 * time.Hour)
}

type ownerData struct {
	projects     []models.Project
	events       []models.Event
	roster       []models.Volunteer
	applications []models.Application
}

type loadSet struct {
	events, roster, applications bool
}

func (s *AnalyticsService) load(ctx context.Context, ownerID string, what loadSet) (*ownerData, error) {
	data := &ownerData{}

	var err error
	data.projects, err = s.store.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(data.projects))
	for _, p := range data.projects {
		ids = append(ids, p.ID)
	}

	if what.events {
		if data.events, err = s.store.ListEventsByProjects(ctx, ids); err != nil {
			return nil, err
		}
	}
	if what.roster {
		if data.roster, err = s.store.ListVolunteersByProjects(ctx, ids); err != nil {
			return nil, err
		}
	}
	if what.applications {
		if data.applications, err = s.store.ListApplicationsByProjects(ctx, ids); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (s *AnalyticsService) Overview(ctx context.Context, caller *models.User, days int) (types.AnalyticsOverview, error) {
	data, err := s.load(ctx, caller.ID, loadSet{events: true, roster: true, applications: true})
	if err != nil {
		return types.AnalyticsOverview{}, err
	}
	now := s.now()
	return Overview(data.projects, data.events, data.roster, data.applications, Threshold(now, days), now), nil
}

func (s *AnalyticsService) ProjectsByCategory(ctx context.Context, caller *models.User, days int) ([]types.NamedCount, error) {
	data, err := s.load(ctx, caller.ID, loadSet{})
	if err != nil {
		return nil, err
	}
	return ProjectsByCategory(data.projects, Threshold(s.now(), days)), nil
}

func (s *AnalyticsService) SkillsDistribution(ctx context.Context, caller *models.User, days int) ([]types.NamedCount, error) {
	data, err := s.load(ctx, caller.ID, loadSet{})
	if err != nil {
		return nil, err
	}
	return SkillsDistribution(data.projects, Threshold(s.now(), days)), nil
}

func (s *AnalyticsService) MonthlyHours(ctx context.Context, caller *models.User, days int) ([]types.MonthlyHoursPoint, error) {
	data, err := s.load(ctx, caller.ID, loadSet{roster: true})
	if err != nil {
		return nil, err
	}
	return MonthlyHours(data.projects, data.roster, Threshold(s.now(), days)), nil
}

func (s *AnalyticsService) ApplicationStats(ctx context.Context, caller *models.User, days int) (types.ApplicationStats, error) {
	data, err := s.load(ctx, caller.ID, loadSet{applications: true})
	if err != nil {
		return types.ApplicationStats{}, err
	}
	return ApplicationStats(data.applications, Threshold(s.now(), days)), nil
}

func onOrAfter(t, threshold time.Time) bool {
	return !t.Before(threshold)
}

// volunteerHours substitutes DefaultVolunteerHours for an unrecorded count.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func volunteerHours(v models.Volunteer) int {
	if v.HoursContributed == nil {
		return types.DefaultVolunteerHours
	}
	return *v.HoursContributed
}

func projectCreation(projects []models.Project) map[string]time.Time {
	created := make(map[string]time.Time, len(projects))
	for _, p := range projects {
		created[p.ID] = p.CreatedAt
	}
	return created
}

// rosterInRange counts an entry when it joined on or after threshold, or when
// its project was created on or after threshold.
func rosterInRange(v models.Volunteer, projectCreated, threshold time.Time) bool {
	if v.JoinedAt != nil && onOrAfter(*v.JoinedAt, threshold) {
		return true
	}
	return !projectCreated.IsZero() && onOrAfter(projectCreated, threshold)
}

func Overview(projects []models.Project, events []models.Event, roster []models.Volunteer, apps []models.Application, threshold, now time.Time) types.AnalyticsOverview {
	var out types.AnalyticsOverview

	for _, p := range projects {
		if onOrAfter(p.CreatedAt, threshold) {
			out.TotalProjects++
		}
	}

	// Event dates carry no time of day; the window runs from the threshold's
	// date through today.
	firstDay, today := utcDate(threshold), utcDate(now)
	for _, e := range events {
		if onOrAfter(e.Date, firstDay) && !e.Date.After(today) {
			out.TotalEvents++
		}
	}

	created := projectCreation(projects)
	for _, v := range roster {
		if rosterInRange(v, created[v.ProjectID], threshold) {
			out.TotalVolunteers++
			out.TotalHours += volunteerHours(v)
		}
	}

	for _, a := range apps {
		if onOrAfter(a.AppliedAt, threshold) {
			out.TotalApplications++
		}
	}

	out.TotalImpact = out.TotalVolunteers * types.ImpactPerVolunteer
	return out
}

// countInOrder tallies keys and returns them by descending count, keeping
// first-seen order among equal counts.
type countInOrder struct {
	order  []string
	counts map[string]int
}

func newCountInOrder() *countInOrder {
	return &countInOrder{counts: make(map[string]int)}
}

func (c *countInOrder) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *countInOrder) sorted() []types.NamedCount {
	out := make([]types.NamedCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, types.NamedCount{Name: key, Value: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

func ProjectsByCategory(projects []models.Project, threshold time.Time) []types.NamedCount {
	counter := newCountInOrder()
	for _, p := range projects {
		if !onOrAfter(p.CreatedAt, threshold) {
			continue
		}
		category := p.Category
		if strings.TrimSpace(category) == "" {
			category = types.UncategorizedLabel
		}
		counter.add(category)
	}
	return counter.sorted()
}

// SkillsDistribution returns the most frequent needed skills. Tags are trimmed
// but keep their case, so "Python" and "python" count separately.
func SkillsDistribution(projects []models.Project, threshold time.Time) []types.NamedCount {
	counter := newCountInOrder()
	for _, p := range projects {
		if !onOrAfter(p.CreatedAt, threshold) {
			continue
		}
		for _, skill := range p.SkillsNeeded {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			counter.add(skill)
		}
	}

	top := counter.sorted()
	if len(top) > types.TopSkillsLimit {
		top = top[:types.TopSkillsLimit]
	}
	return top
}

// MonthlyHours buckets roster hours by the month of each entry's join time,
// falling back to its project's creation time. Buckets are labeled with the
// abbreviated month name only, so the same month in two years shares a bucket.
// Buckets are ordered by the earliest month that fed them.
func MonthlyHours(projects []models.Project, roster []models.Volunteer, threshold time.Time) []types.MonthlyHoursPoint {
	created := projectCreation(projects)

	type bucket struct {
		label string
		first time.Time
		hours int
	}
	buckets := make(map[string]*bucket)

	for _, v := range roster {
		var ref time.Time
		if v.JoinedAt != nil {
			ref = *v.JoinedAt
		} else {
			ref = created[v.ProjectID]
		}
		if ref.IsZero() || ref.Before(threshold) {
			continue
		}

		ref = ref.UTC()
		month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		label := ref.Month().String()[:3]

		b, ok := buckets[label]
		if !ok {
			b = &bucket{label: label, first: month}
			buckets[label] = b
		}
		if month.Before(b.first) {
			b.first = month
		}
		b.hours += volunteerHours(v)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].first.Before(ordered[j].first)
	})

	points := make([]types.MonthlyHoursPoint, 0, len(ordered))
	for _, b := range ordered {
		points = append(points, types.MonthlyHoursPoint{Month: b.label, Hours: b.hours})
	}
	return points
}

func ApplicationStats(apps []models.Application, threshold time.Time) types.ApplicationStats {
	var stats types.ApplicationStats
	for _, a := range apps {
		if !onOrAfter(a.AppliedAt, threshold) {
			continue
		}
		stats.Total++
		status, err := types.ParseApplicationStatus(a.Status)
		if err != nil {
			continue
		}
		switch status {
		case types.ApplicationPending:
			stats.Pending++
		case types.ApplicationAccepted:
			stats.Accepted++
		case types.ApplicationRejected:
			stats.Rejected++
		}
	}
	return stats
}
