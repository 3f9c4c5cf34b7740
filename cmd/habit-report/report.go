package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/stats"
)

// Output formats of the stats command
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const rankingSize = 5

// report is the stats command output.
type report struct {
	Start          string                `json:"start" yaml:"start"`
	CurrentDay     int                   `json:"current_day" yaml:"current_day"`
	Summary        stats.Summary         `json:"summary" yaml:"summary"`
	MostConsistent []stats.PlatformTotal `json:"most_consistent" yaml:"most_consistent"`
	NeedsAttention []stats.PlatformTotal `json:"needs_attention" yaml:"needs_attention"`
	Days           []dayLine             `json:"days" yaml:"days"`
}

type dayLine struct {
	Day    int             `json:"day" yaml:"day"`
	Date   string          `json:"date" yaml:"date"`
	Posts  int             `json:"posts" yaml:"posts"`
	Status model.DayStatus `json:"status" yaml:"status"`
}

func buildReport(t model.Table, daysElapsed int) report {
	summary := stats.Summarize(t, daysElapsed)
	r := report{
		Start:          t.StartDate().Format(model.DateLayout),
		CurrentDay:     summary.CurrentDay(),
		Summary:        summary,
		MostConsistent: stats.MostConsistent(t, rankingSize),
		NeedsAttention: stats.NeedsAttention(t, rankingSize),
	}
	for _, rec := range t.Days {
		r.Days = append(r.Days, dayLine{
			Day:    rec.Day,
			Date:   rec.Date.Format(model.DateLayout),
			Posts:  rec.Posts(),
			Status: rec.Status(),
		})
	}
	return r
}

func writeReport(w io.Writer, format string, r report, now time.Time) error {
	switch strings.ToLower(format) {
	case formatText, "":
		return writeText(w, r, now)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

var statusMarks = map[model.DayStatus]string{
	model.DayStatusPerfect: "#",
	model.DayStatusActive:  "+",
	model.DayStatusPartial: ".",
	model.DayStatusEmpty:   " ",
}

func writeText(w io.Writer, r report, now time.Time) error {
	s := r.Summary
	var b strings.Builder

	start, err := time.Parse(model.DateLayout, r.Start)
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "Challenge started %s (%s)", r.Start, humanize.RelTime(start, now, "ago", "from now"))
	if s.Finished() {
		b.WriteString(", finished\n")
	} else if r.CurrentDay > 0 {
		fmt.Fprintf(&b, ", %s day of %d\n", humanize.Ordinal(r.CurrentDay), model.ChallengeDays)
	} else {
		b.WriteString(", not started yet\n")
	}

	fmt.Fprintf(&b, "Current streak: %d (longest %d)\n", s.Streak.Current, s.Streak.Longest)
	fmt.Fprintf(&b, "Completion:     %.0f%% (%d/%d posts)\n", s.CompletionRate, s.TotalPosts, s.PossiblePosts)
	fmt.Fprintf(&b, "Perfect days:   %d\n", s.PerfectDays)
	fmt.Fprintf(&b, "Daily average:  %.1f platforms\n", s.AveragePerDay)
	fmt.Fprintf(&b, "Tier:           %s\n", s.Tier)

	b.WriteString("\nMost consistent:\n")
	writeRanking(&b, r.MostConsistent)
	b.WriteString("Needs attention:\n")
	writeRanking(&b, r.NeedsAttention)

	b.WriteString("\nDays (# perfect, + active, . partial):\n")
	for i, d := range r.Days {
		fmt.Fprintf(&b, " %2d[%s]", d.Day, statusMarks[d.Status])
		if (i+1)%5 == 0 {
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func writeRanking(b *strings.Builder, ranked []stats.PlatformTotal) {
	for _, pt := range ranked {
		fmt.Fprintf(b, "  %-16s %2d/%d days (%.0f%%)\n", pt.Name, pt.Days, model.ChallengeDays, pt.Percent())
	}
}
