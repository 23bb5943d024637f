// Package sleep converts raw sleep-stage segments from the fitness
// provider into per-night summaries.
package sleep

import (
	"sort"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
)

// DefaultSessionGap is the largest interruption still counted as part of
// the same night. Consumer fitness data is full of brief wake segments
// and nights spanning midnight; grouping by calendar day would fragment
// or double-count them, so any gap shorter than this joins the session.
const DefaultSessionGap = 8 * time.Hour

// Segment is one raw stage interval as delivered by the provider.
type Segment struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
}

// Night is an aggregated sleep session: a representative date (the end of
// the last absorbed segment), the total minutes asleep, and per-stage
// subtotals.
type Night struct {
	Date         time.Time
	TotalMinutes int
	Stages       map[domain.SleepStage]int
}

// Aggregator stitches chronologically ordered segments into nights. It is
// a pure function of its input and holds no state between calls.
type Aggregator struct {
	gap time.Duration
}

// NewAggregator returns an aggregator with the given session gap.
// Non-positive gaps fall back to DefaultSessionGap.
func NewAggregator(gap time.Duration) *Aggregator {
	if gap <= 0 {
		gap = DefaultSessionGap
	}
	return &Aggregator{gap: gap}
}

type canonSegment struct {
	stage domain.SleepStage
	start time.Time
	end   time.Time
}

// Nights aggregates the segments. Segments with unrecognized stage labels
// are discarded. Input need not be sorted; ties on start time keep input
// order. The result is sorted newest first.
func (a *Aggregator) Nights(segments []Segment) []Night {
	canon := make([]canonSegment, 0, len(segments))
	for _, seg := range segments {
		stage, ok := domain.ParseSleepStage(seg.Stage)
		if !ok {
			continue
		}
		canon = append(canon, canonSegment{stage: stage, start: seg.StartTime, end: seg.EndTime})
	}
	if len(canon) == 0 {
		return nil
	}

	sort.SliceStable(canon, func(i, j int) bool {
		return canon[i].start.Before(canon[j].start)
	})

	var nights []Night
	current := seedNight(canon[0])
	lastEnd := canon[0].end

	for _, seg := range canon[1:] {
		if seg.start.Sub(lastEnd) < a.gap {
			mins := segmentMinutes(seg)
			current.TotalMinutes += mins
			current.Stages[seg.stage] += mins
			current.Date = seg.end
			lastEnd = seg.end
			continue
		}
		nights = append(nights, current)
		current = seedNight(seg)
		lastEnd = seg.end
	}
	nights = append(nights, current)

	sort.Slice(nights, func(i, j int) bool {
		return nights[i].Date.After(nights[j].Date)
	})
	return nights
}

func seedNight(seg canonSegment) Night {
	mins := segmentMinutes(seg)
	return Night{
		Date:         seg.end,
		TotalMinutes: mins,
		Stages:       map[domain.SleepStage]int{seg.stage: mins},
	}
}

func segmentMinutes(seg canonSegment) int {
	mins := int(seg.end.Sub(seg.start) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}
