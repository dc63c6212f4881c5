package models

import (
	"time"
)

// Visit is one page-view event in the shared traffic log
type Visit struct {
	Page      string    `json:"page"`
	Title     string    `json:"title,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	Source    string    `json:"source"`
	VisitorID string    `json:"visitorId"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"` // day bucket, YYYY-MM-DD
	UserAgent string    `json:"userAgent,omitempty"`
}

// TrackRequest is the public body for POST /api/track-visit
type TrackRequest struct {
	Page     string `json:"page"`
	Title    string `json:"title"`
	Referrer string `json:"referrer"`
}

// Traffic source categories
const (
	SourceDirect   = "Direct"
	SourceOrganic  = "Organic Search"
	SourceSocial   = "Social"
	SourceReferral = "Referral"
)

// TrafficStats is the dashboard aggregation over one window of visits
type TrafficStats struct {
	PageViews      int            `json:"pageViews"`
	PageViewsDelta float64        `json:"pageViewsChange"`
	Visitors       int            `json:"visitors"`
	VisitorsDelta  float64        `json:"visitorsChange"`
	BounceRate     float64        `json:"bounceRate"`
	BounceDelta    float64        `json:"bounceRateChange"` // percentage points
	AvgSession     string         `json:"avgSession"`
	AvgDelta       float64        `json:"avgSessionChange"`
	Daily          []DailyBucket  `json:"daily"`
	Sources        []CountedLabel `json:"sources"`
	TopPages       []CountedLabel `json:"topPages"`
	Referrers      []CountedLabel `json:"referrers"`
}

// DailyBucket is one calendar day of the stats window
type DailyBucket struct {
	Date      string `json:"date"`
	PageViews int    `json:"pageViews"`
	Visitors  int    `json:"visitors"`
}

// CountedLabel is one row of a top-N grouping
type CountedLabel struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
