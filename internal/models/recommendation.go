// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package models

// Recommendation sources. Static curated lists are "generated"; live catalog
// results are "external".
const (
	SourceGenerated = "generated"
	SourceExternal  = "external"
)

// Track is one curated track in a static playlist.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre,omitempty"`
}

// Playlist is a single recommended content list. Static entries carry
// curated Tracks; external catalog entries carry ExternalURL, Image and
// TracksTotal instead.
type Playlist struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tracks      []Track `json:"tracks,omitempty"`
	ExternalURL string  `json:"external_url,omitempty"`
	Image       string  `json:"image,omitempty"`
	TracksTotal int     `json:"tracks_total,omitempty"`
}

// RecommendationResult is one ordered list of playlists with its origin.
type RecommendationResult struct {
	Category  string     `json:"category"`
	Playlists []Playlist `json:"playlists"`
	Source    string     `json:"source"`
}

// RecommendationBundle is the full recommendation output for a submission.
// Hybrid is true exactly when the external catalog contributed the primary
// result; Fallback is nil exactly when Hybrid is false.
type RecommendationBundle struct {
	Primary  RecommendationResult  `json:"primary"`
	Fallback *RecommendationResult `json:"fallback,omitempty"`
	Hybrid   bool                  `json:"hybrid"`
}
