// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package recommend

import "github.com/tomtom215/moodatlas/internal/models"

// bucket is one contiguous mood range with its curated playlists and the
// search terms used for the external catalog path.
type bucket struct {
	name       string
	minMood    int
	maxMood    int
	playlists  []models.Playlist
	queryTerms []string
}

// buckets covers mood [0,10] with five non-overlapping contiguous ranges,
// ordered ascending. Boundary behavior lives entirely in bucketFor.
var buckets = []bucket{
	{
		name:    "very_low",
		minMood: 0,
		maxMood: 1,
		playlists: []models.Playlist{
			{
				Name:        "Gentle Comfort",
				Description: "Soft, warm songs for the hardest days",
				Tracks: []models.Track{
					{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient"},
					{Title: "Holocene", Artist: "Bon Iver", Genre: "Indie Folk"},
					{Title: "The Night We Met", Artist: "Lord Huron", Genre: "Indie"},
				},
			},
			{
				Name:        "You're Not Alone",
				Description: "Music that understands and sits with you",
				Tracks: []models.Track{
					{Title: "Fix You", Artist: "Coldplay", Genre: "Alternative"},
					{Title: "Breathe Me", Artist: "Sia", Genre: "Pop"},
					{Title: "Skinny Love", Artist: "Bon Iver", Genre: "Indie Folk"},
				},
			},
		},
		queryTerms: []string{"comfort songs", "gentle acoustic", "healing music"},
	},
	{
		name:    "low",
		minMood: 2,
		maxMood: 3,
		playlists: []models.Playlist{
			{
				Name:        "Slow Lift",
				Description: "Mellow tracks that ease you upward",
				Tracks: []models.Track{
					{Title: "Here Comes the Sun", Artist: "The Beatles", Genre: "Classic Rock"},
					{Title: "Vienna", Artist: "Billy Joel", Genre: "Soft Rock"},
					{Title: "Banana Pancakes", Artist: "Jack Johnson", Genre: "Acoustic"},
				},
			},
			{
				Name:        "Quiet Hope",
				Description: "Understated songs with a brighter edge",
				Tracks: []models.Track{
					{Title: "Rivers and Roads", Artist: "The Head and the Heart", Genre: "Indie Folk"},
					{Title: "Landslide", Artist: "Fleetwood Mac", Genre: "Rock"},
					{Title: "Bloom", Artist: "The Paper Kites", Genre: "Indie"},
				},
			},
		},
		queryTerms: []string{"mellow mood lift", "hopeful acoustic", "easy listening"},
	},
	{
		name:    "neutral",
		minMood: 4,
		maxMood: 5,
		playlists: []models.Playlist{
			{
				Name:        "Steady Flow",
				Description: "Balanced background music for an ordinary day",
				Tracks: []models.Track{
					{Title: "Dreams", Artist: "Fleetwood Mac", Genre: "Rock"},
					{Title: "Sunday Morning", Artist: "Maroon 5", Genre: "Pop"},
					{Title: "Put Your Records On", Artist: "Corinne Bailey Rae", Genre: "Soul"},
				},
			},
			{
				Name:        "Afternoon Drift",
				Description: "Laid-back grooves to keep things moving",
				Tracks: []models.Track{
					{Title: "Island in the Sun", Artist: "Weezer", Genre: "Alternative"},
					{Title: "Three Little Birds", Artist: "Bob Marley", Genre: "Reggae"},
					{Title: "Budapest", Artist: "George Ezra", Genre: "Pop"},
				},
			},
		},
		queryTerms: []string{"chill vibes", "laid back playlist", "everyday mix"},
	},
	{
		name:    "happy",
		minMood: 6,
		maxMood: 7,
		playlists: []models.Playlist{
			{
				Name:        "Good Day Energy",
				Description: "Bright, feel-good tracks to match your mood",
				Tracks: []models.Track{
					{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", Genre: "Pop"},
					{Title: "Lovely Day", Artist: "Bill Withers", Genre: "Soul"},
					{Title: "Valerie", Artist: "Amy Winehouse", Genre: "Soul"},
				},
			},
			{
				Name:        "Upbeat Favorites",
				Description: "Songs that keep the momentum going",
				Tracks: []models.Track{
					{Title: "Mr. Blue Sky", Artist: "Electric Light Orchestra", Genre: "Rock"},
					{Title: "Send Me On My Way", Artist: "Rusted Root", Genre: "Folk Rock"},
					{Title: "Feel It Still", Artist: "Portugal. The Man", Genre: "Alternative"},
				},
			},
		},
		queryTerms: []string{"feel good hits", "upbeat playlist", "good vibes"},
	},
	{
		name:    "very_happy",
		minMood: 8,
		maxMood: 10,
		playlists: []models.Playlist{
			{
				Name:        "Peak Joy",
				Description: "High-energy celebration anthems",
				Tracks: []models.Track{
					{Title: "Happy", Artist: "Pharrell Williams", Genre: "Pop"},
					{Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Genre: "Pop"},
					{Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Genre: "Funk"},
				},
			},
			{
				Name:        "Dance It Out",
				Description: "Keep the celebration moving",
				Tracks: []models.Track{
					{Title: "September", Artist: "Earth, Wind & Fire", Genre: "Funk"},
					{Title: "Dancing Queen", Artist: "ABBA", Genre: "Pop"},
					{Title: "I Wanna Dance with Somebody", Artist: "Whitney Houston", Genre: "Pop"},
				},
			},
		},
		queryTerms: []string{"celebration playlist", "dance party", "happy hits"},
	},
}

// anxietyReliefPlaylist is prepended to the selected bucket's lists whenever
// anxiety >= anxietyThreshold, regardless of mood.
var anxietyReliefPlaylist = models.Playlist{
	Name:        "Anxiety Relief",
	Description: "Calming sounds to slow your breathing and settle your mind",
	Tracks: []models.Track{
		{Title: "Clair de Lune", Artist: "Claude Debussy", Genre: "Classical"},
		{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient"},
		{Title: "River Flows in You", Artist: "Yiruma", Genre: "Piano"},
	},
}

// anxietyQueryTerms wholly replaces the bucket's terms on the external path
// when anxiety >= anxietyThreshold.
var anxietyQueryTerms = []string{"anxiety relief", "calm meditation", "deep breathing music"}

const anxietyThreshold = 7

// bucketFor maps a mood score to its bucket. Values outside every declared
// range fall back to neutral; validated input should never reach that branch.
func bucketFor(mood int) bucket {
	for _, b := range buckets {
		if mood >= b.minMood && mood <= b.maxMood {
			return b
		}
	}
	return buckets[2] // neutral
}
