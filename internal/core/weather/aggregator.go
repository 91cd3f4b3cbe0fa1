package weather

import (
	"fmt"
	"math"
	"sort"
	"time"

	"skycast.app/internal/ports"
)

const dateKeyLayout = "2006-01-02"

// Aggregator folds the 3-hour forecast series into calendar days
type Aggregator struct {
	now      func() time.Time
	location *time.Location
}

// AggregatorOptions holds the clock and the time zone used for grouping
type AggregatorOptions struct {
	Now      func() time.Time
	Location *time.Location
}

// NewAggregator creates a new aggregator, defaulting the clock to time.Now and the location to time.Local
func NewAggregator(opts AggregatorOptions) *Aggregator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Aggregator{now: opts.Now, location: opts.Location}
}

type dayGroup struct {
	date    time.Time
	samples []ports.ForecastEntry
}

// ToDailyForecast returns at most MaxForecastDays entries, nearest day first.
// A failed or empty payload yields an empty list.
func (a *Aggregator) ToDailyForecast(payload *ports.ForecastPayload) []DailyForecastEntry {
	if !payload.Succeeded() || len(payload.List) == 0 {
		return []DailyForecastEntry{}
	}

	groups := a.groupByDay(payload.List)
	if len(groups) > MaxForecastDays {
		groups = groups[:MaxForecastDays]
	}

	tomorrow := a.now().In(a.location).AddDate(0, 0, 1).Format(dateKeyLayout)

	entries := make([]DailyForecastEntry, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, a.summarize(group, tomorrow))
	}
	return entries
}

func (a *Aggregator) groupByDay(samples []ports.ForecastEntry) []*dayGroup {
	byKey := make(map[string]*dayGroup)
	groups := make([]*dayGroup, 0)

	for _, sample := range samples {
		at := time.Unix(sample.Dt, 0).In(a.location)
		key := at.Format(dateKeyLayout)

		group, ok := byKey[key]
		if !ok {
			group = &dayGroup{
				date: time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, a.location),
			}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.samples = append(group.samples, sample)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].date.Before(groups[j].date)
	})
	return groups
}

func (a *Aggregator) summarize(group *dayGroup, tomorrow string) DailyForecastEntry {
	maxTemp := math.Inf(-1)
	minTemp := math.Inf(1)
	for _, sample := range group.samples {
		maxTemp = math.Max(maxTemp, sample.Main.TempMax)
		minTemp = math.Min(minTemp, sample.Main.TempMin)
	}

	isDay := sampleIsDay(group.samples[0])

	return DailyForecastEntry{
		Icon:      IconForCode(dominantCondition(group.samples), isDay),
		DayOfWeek: group.date.Format("Mon"),
		Date:      group.date.Format("02 Jan"),
		MinTemp:   temperatureLabel(roundHalfUp(minTemp)),
		MaxTemp:   temperatureLabel(int(math.Ceil(maxTemp))),
		Selected:  group.date.Format(dateKeyLayout) == tomorrow,
	}
}

// dominantCondition picks the most frequent condition id, ties going to the one seen first
func dominantCondition(samples []ports.ForecastEntry) int {
	counts := make(map[int]int)
	order := make([]int, 0)

	for _, sample := range samples {
		for _, condition := range sample.Weather {
			if _, seen := counts[condition.ID]; !seen {
				order = append(order, condition.ID)
			}
			counts[condition.ID]++
		}
	}

	if len(order) == 0 {
		return ClearSkyCode
	}

	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best
}

func sampleIsDay(sample ports.ForecastEntry) bool {
	if len(sample.Weather) > 0 && sample.Weather[0].Icon != "" {
		return isDayIcon(sample.Weather[0].Icon)
	}
	return sample.Sys.Pod == "d"
}

func temperatureLabel(value int) string {
	return fmt.Sprintf("%d°", value)
}
