package service

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
	"github.com/studio-site-backend/internal/store"
	"github.com/studio-site-backend/internal/validation"
)

// trafficService is the concrete implementation of TrafficService
type trafficService struct {
	visits *store.VisitLog
	log    zerolog.Logger
	now    func() time.Time
}

// newTrafficService creates a new TrafficService
func newTrafficService(visits *store.VisitLog, log zerolog.Logger) *trafficService {
	return &trafficService{
		visits: visits,
		log:    log.With().Str("service", "traffic").Logger(),
		now:    time.Now,
	}
}

// Track records one page view
func (s *trafficService) Track(req *models.TrackRequest, remoteAddr, userAgent string) error {
	if strings.TrimSpace(req.Page) == "" {
		return validation.Errors{{Field: "page", Message: "page is required"}}
	}

	now := s.now()
	visit := models.Visit{
		Page:      req.Page,
		Title:     req.Title,
		Referrer:  req.Referrer,
		Source:    CategorizeSource(req.Referrer),
		VisitorID: Fingerprint(remoteAddr, userAgent),
		Timestamp: now,
		Date:      now.Format("2006-01-02"),
		UserAgent: userAgent,
	}
	return s.visits.Append(visit)
}

// Stats aggregates the visit log over the last days days
func (s *trafficService) Stats(days int) (*models.TrafficStats, error) {
	// The log never holds more than RetentionDays of history, so a
	// wider window only seeds empty buckets
	if days > store.RetentionDays {
		days = store.RetentionDays
	}
	visits, err := s.visits.All()
	if err != nil {
		return nil, err
	}
	return ComputeStats(visits, days, s.now()), nil
}

// Fingerprint derives a pseudo-identifier for a client from its
// network address and user agent: a 32-bit multiply-by-31 rolling
// hash rendered in base 36. Not cryptographic, not stable across IP
// changes; collisions are expected and acceptable. It is only a
// best-effort deduplication key for analytics.
func Fingerprint(remoteAddr, userAgent string) string {
	var h uint32
	for _, b := range []byte(remoteAddr + userAgent) {
		h = h*31 + uint32(b)
	}
	return strconv.FormatUint(uint64(h), 36)
}

// CategorizeSource maps a referrer onto one coarse traffic source
func CategorizeSource(referrer string) string {
	if referrer == "" {
		return models.SourceDirect
	}
	ref := strings.ToLower(referrer)
	switch {
	case strings.Contains(ref, "google.") || strings.Contains(ref, "bing.") || strings.Contains(ref, "duckduckgo."):
		return models.SourceOrganic
	case strings.Contains(ref, "facebook.") || strings.Contains(ref, "instagram.") ||
		strings.Contains(ref, "twitter.") || strings.Contains(ref, "t.co") ||
		strings.Contains(ref, "linkedin."):
		return models.SourceSocial
	default:
		return models.SourceReferral
	}
}

// ComputeStats buckets visits inside [now-windowDays, now] and reports
// headline metrics with deltas against the prior equal-length window
func ComputeStats(visits []models.Visit, windowDays int, now time.Time) *models.TrafficStats {
	windowStart := now.AddDate(0, 0, -windowDays)
	prevStart := now.AddDate(0, 0, -2*windowDays)

	var current, previous []models.Visit
	for _, v := range visits {
		switch {
		case !v.Timestamp.Before(windowStart) && !v.Timestamp.After(now):
			current = append(current, v)
		case !v.Timestamp.Before(prevStart) && v.Timestamp.Before(windowStart):
			previous = append(previous, v)
		}
	}

	pageViews := len(current)
	visitors := countVisitors(current)
	bounce := bounceRate(current)
	avg := avgPages(pageViews, visitors)

	prevViews := len(previous)
	prevVisitors := countVisitors(previous)
	prevBounce := bounceRate(previous)
	prevAvg := avgPages(prevViews, prevVisitors)

	stats := &models.TrafficStats{
		PageViews:      pageViews,
		PageViewsDelta: percentChange(float64(pageViews), float64(prevViews)),
		Visitors:       visitors,
		VisitorsDelta:  percentChange(float64(visitors), float64(prevVisitors)),
		BounceRate:     bounce,
		BounceDelta:    round1(bounce - prevBounce),
		AvgSession:     fmt.Sprintf("%.1f pages", avg),
		AvgDelta:       percentChange(avg, prevAvg),
		Daily:          dailyBuckets(current, windowDays, now),
		Sources:        topN(current, 5, func(v models.Visit) string { return v.Source }),
		TopPages:       topN(current, 5, pageLabel),
		Referrers:      topN(current, 5, referrerLabel),
	}
	return stats
}

// countVisitors counts distinct visitor ids
func countVisitors(visits []models.Visit) int {
	seen := make(map[string]bool)
	for _, v := range visits {
		seen[v.VisitorID] = true
	}
	return len(seen)
}

// bounceRate is the percentage of distinct visitors who saw exactly
// one distinct page
func bounceRate(visits []models.Visit) float64 {
	pages := make(map[string]map[string]bool)
	for _, v := range visits {
		if pages[v.VisitorID] == nil {
			pages[v.VisitorID] = make(map[string]bool)
		}
		pages[v.VisitorID][v.Page] = true
	}
	if len(pages) == 0 {
		return 0
	}
	bounced := 0
	for _, p := range pages {
		if len(p) == 1 {
			bounced++
		}
	}
	return round1(float64(bounced) / float64(len(pages)) * 100)
}

func avgPages(pageViews, visitors int) float64 {
	if visitors == 0 {
		return 0
	}
	return round1(float64(pageViews) / float64(visitors))
}

// percentChange is 0 when the previous period is empty; that reads as
// "no change" but really means "nothing to compare against"
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round1((current - previous) / previous * 100)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// dailyBuckets pre-seeds one bucket per calendar day of the window so
// zero-visit days still appear, then folds the visits in
func dailyBuckets(visits []models.Visit, windowDays int, now time.Time) []models.DailyBucket {
	type dayAgg struct {
		views    int
		visitors map[string]bool
	}
	// The window starts windowDays ago at this clock time, so it
	// touches windowDays+1 calendar days; seed them all or visits on
	// the oldest partial day would be counted in the totals but
	// missing from the series
	byDay := make(map[string]*dayAgg, windowDays+1)
	order := make([]string, 0, windowDays+1)
	for i := windowDays; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		byDay[day] = &dayAgg{visitors: make(map[string]bool)}
		order = append(order, day)
	}
	for _, v := range visits {
		agg, ok := byDay[v.Date]
		if !ok {
			continue
		}
		agg.views++
		agg.visitors[v.VisitorID] = true
	}

	buckets := make([]models.DailyBucket, 0, len(order))
	for _, day := range order {
		agg := byDay[day]
		buckets = append(buckets, models.DailyBucket{
			Date:      day,
			PageViews: agg.views,
			Visitors:  len(agg.visitors),
		})
	}
	return buckets
}

// topN groups visits by label and returns the n biggest groups by
// descending count. Ties keep first-appearance order (stable sort).
func topN(visits []models.Visit, n int, label func(models.Visit) string) []models.CountedLabel {
	counts := make(map[string]int)
	order := []string{}
	for _, v := range visits {
		l := label(v)
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}

	rows := make([]models.CountedLabel, 0, len(order))
	for _, l := range order {
		rows = append(rows, models.CountedLabel{Label: l, Count: counts[l]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// pageLabel prefers the page title over the raw path when present
func pageLabel(v models.Visit) string {
	if v.Title != "" {
		return v.Title
	}
	return v.Page
}

// referrerLabel normalizes an absolute referrer URL down to its
// hostname, keeps other non-empty referrers verbatim, and groups the
// rest as direct traffic
func referrerLabel(v models.Visit) string {
	if v.Referrer == "" {
		return models.SourceDirect
	}
	if u, err := url.Parse(v.Referrer); err == nil && u.IsAbs() && u.Hostname() != "" {
		return u.Hostname()
	}
	return v.Referrer
}
