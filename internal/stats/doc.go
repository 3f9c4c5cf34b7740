package stats

// Package stats computes dashboard statistics from a tracking table: totals,
// completion rate, perfect days, streaks and per-platform rankings. Every
// function is pure; callers pass the days-elapsed count they derived from
// their own clock.
