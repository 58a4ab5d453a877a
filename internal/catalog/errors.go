// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package catalog

import "errors"

var (
	// ErrAuth indicates credential acquisition or validation failed.
	ErrAuth = errors.New("catalog authentication failed")

	// ErrService indicates the catalog service failed or was unreachable.
	ErrService = errors.New("catalog service unavailable")
)
