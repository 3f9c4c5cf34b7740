package model

// Package model defines the challenge data structures shared across the app:
// the 30-day tracking table, platforms, challenge metadata and day status
// classification. The table is a fixed-size value type so its shape cannot
// drift from 30 days by 10 platforms.
