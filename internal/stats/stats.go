// Package stats reduces a user's workout and progress history into summary
// figures. All functions are pure; callers fetch the records.
//
// Calendar bucketing (months and week days) always uses UTC so that the same
// record lands in the same bucket on every request.
package stats

import (
	"cmp"
	"slices"
	"time"

	"smartlife/internal/models"
)

// MaxTrendMonths caps the number of months MonthlyTrends returns.
const MaxTrendMonths = 12

// WorkoutSummary aggregates a set of workouts.
type WorkoutSummary struct {
	TotalWorkouts     int     `json:"totalWorkouts"`
	TotalDuration     int     `json:"totalDuration"`
	TotalCalories     float64 `json:"totalCalories"`
	CompletedWorkouts int     `json:"completedWorkouts"`
}

// ProgressSummary aggregates a set of progress entries.
type ProgressSummary struct {
	AverageWeight        float64 `json:"averageWeight"`
	AverageSleepQuality  float64 `json:"averageSleepQuality"`
	AverageSleepDuration float64 `json:"averageSleepDuration"`
	AverageWaterIntake   float64 `json:"averageWaterIntake"`
	TotalWorkouts        int     `json:"totalWorkouts"`
	TotalCaloriesBurned  float64 `json:"totalCaloriesBurned"`
}

// MonthlyTrend holds the averages for one calendar month.
type MonthlyTrend struct {
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	AvgWeight         float64 `json:"avgWeight"`
	AvgSleepQuality   float64 `json:"avgSleepQuality"`
	AvgWaterIntake    float64 `json:"avgWaterIntake"`
	SumCaloriesBurned float64 `json:"sumCaloriesBurned"`
	Entries           int     `json:"entries"`
}

// DayActivity is one bar of the weekly activity chart.
type DayActivity struct {
	Day                string    `json:"day"`
	Date               time.Time `json:"date"`
	WorkoutTime        int       `json:"workoutTime"`
	CaloriesBurned     float64   `json:"caloriesBurned"`
	ExercisesCompleted int       `json:"exercisesCompleted"`
}

// SummarizeWorkouts totals duration and calories over workouts.
func SummarizeWorkouts(workouts []models.Workout) WorkoutSummary {
	summary := WorkoutSummary{TotalWorkouts: len(workouts)}
	for i := range workouts {
		w := &workouts[i]
		summary.TotalDuration += w.Duration
		summary.TotalCalories += w.CaloriesBurned
		if w.Completed {
			summary.CompletedWorkouts++
		}
	}
	return summary
}

// SummarizeProgress averages body and sleep figures over entries and totals
// the embedded workout snapshots.
func SummarizeProgress(entries []models.Progress) ProgressSummary {
	var acc progressAccumulator
	for i := range entries {
		acc.add(&entries[i])
	}

	return ProgressSummary{
		AverageWeight:        acc.mean(acc.weight),
		AverageSleepQuality:  acc.mean(acc.sleepQuality),
		AverageSleepDuration: acc.mean(acc.sleepDuration),
		AverageWaterIntake:   acc.mean(acc.waterIntake),
		TotalWorkouts:        acc.exercises,
		TotalCaloriesBurned:  acc.calories,
	}
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyTrends groups entries by UTC calendar month, most recent first,
// keeping at most MaxTrendMonths months. Months without entries are omitted.
func MonthlyTrends(entries []models.Progress) []MonthlyTrend {
	buckets := make(map[monthKey]*progressAccumulator)
	for i := range entries {
		d := entries[i].Date.UTC()
		key := monthKey{year: d.Year(), month: d.Month()}
		acc, ok := buckets[key]
		if !ok {
			acc = &progressAccumulator{}
			buckets[key] = acc
		}
		acc.add(&entries[i])
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b monthKey) int {
		if c := cmp.Compare(b.year, a.year); c != 0 {
			return c
		}
		return cmp.Compare(b.month, a.month)
	})
	if len(keys) > MaxTrendMonths {
		keys = keys[:MaxTrendMonths]
	}

	trends := make([]MonthlyTrend, 0, len(keys))
	for _, k := range keys {
		acc := buckets[k]
		trends = append(trends, MonthlyTrend{
			Year:              k.year,
			Month:             int(k.month),
			AvgWeight:         acc.mean(acc.weight),
			AvgSleepQuality:   acc.mean(acc.sleepQuality),
			AvgWaterIntake:    acc.mean(acc.waterIntake),
			SumCaloriesBurned: acc.calories,
			Entries:           acc.count,
		})
	}
	return trends
}

// WeeklyActivity buckets workouts into the seven UTC days, Monday first, of
// the week containing now. Workouts outside that week are ignored.
func WeeklyActivity(workouts []models.Workout, now time.Time) []DayActivity {
	start, end := WeekBounds(now)
	days := make([]DayActivity, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = DayActivity{Day: d.Weekday().String()[:3], Date: d}
	}

	for i := range workouts {
		w := &workouts[i]
		d := w.Date.UTC()
		if d.Before(start) || !d.Before(end) {
			continue
		}
		idx := int(d.Sub(start) / (24 * time.Hour))
		days[idx].WorkoutTime += w.Duration
		days[idx].CaloriesBurned += w.CaloriesBurned
		days[idx].ExercisesCompleted += w.CompletedExercises()
	}
	return days
}

// WeekBounds returns the UTC Monday midnight starting the week containing t
// and the Monday midnight after it.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// Weekday counts from Sunday; shift so Monday is day zero.
	offset := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

type progressAccumulator struct {
	count         int
	weight        float64
	sleepQuality  float64
	sleepDuration float64
	waterIntake   float64
	calories      float64
	exercises     int
}

func (a *progressAccumulator) add(p *models.Progress) {
	a.count++
	a.weight += p.Weight
	a.sleepQuality += p.SleepQuality
	a.sleepDuration += p.SleepDuration
	a.waterIntake += p.WaterIntake
	if p.WorkoutStats.CaloriesBurned != nil {
		a.calories += *p.WorkoutStats.CaloriesBurned
	}
	if p.WorkoutStats.ExercisesCompleted != nil {
		a.exercises += *p.WorkoutStats.ExercisesCompleted
	}
}

func (a *progressAccumulator) mean(sum float64) float64 {
	if a.count == 0 {
		return 0
	}
	return sum / float64(a.count)
}
