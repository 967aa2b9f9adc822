package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SubTask is one day's share of a weekly task. Task carries the source's
// fields with EstimatedDuration and DurationLabel replaced by the
// standardized share.
type SubTask struct {
	Task         domain.Task
	SourceTaskID string
	Part         int // 1-based
	Parts        int
	RawMinutes   int // share before standardization
	Distribution DistributionType
}

// Distribute spreads tasks over the selected days of the week starting at
// weekStart and returns the day-sized sub-tasks keyed by day offset (0-6).
// Tasks that cannot be assigned to any day are reported, not dropped.
func Distribute(
	tasks []domain.Task,
	weekStart time.Time,
	settings domain.ScheduleSettings,
	cal Calendar,
) (map[int][]SubTask, []contract.UnscheduledTask) {
	days := make(map[int][]SubTask)
	var unscheduled []contract.UnscheduledTask

	available := cal.AvailableDays(weekStart, settings)

	groups := map[DistributionType][]domain.Task{}
	for _, t := range tasks {
		if t.EstimatedDuration <= 0 {
			unscheduled = append(unscheduled, contract.UnscheduledTask{
				Task:         t,
				SourceTaskID: t.ID,
				Code:         contract.UnscheduledInvalidDuration,
				Message:      fmt.Sprintf("estimated duration %s is not positive", t.EstimatedDuration),
			})
			continue
		}
		if len(available) == 0 {
			unscheduled = append(unscheduled, contract.UnscheduledTask{
				Task:         t,
				SourceTaskID: t.ID,
				Code:         contract.UnscheduledNoAvailableDays,
				Message:      "no study days selected for this week",
			})
			continue
		}
		kind := Classify(t)
		groups[kind] = append(groups[kind], t)
	}
	if len(available) == 0 {
		return days, unscheduled
	}

	assign := func(subs []SubTask, offsets []int) {
		for i, s := range subs {
			days[offsets[i]] = append(days[offsets[i]], s)
		}
	}

	// Daily drills get one share on every available day.
	for _, t := range groups[DistributionDaily] {
		assign(splitTask(t, len(available), DistributionDaily), available)
	}

	// Weekly and intensive tasks share one policy: spread over the optimal
	// number of days, taking the earliest available ones. Whether intensive
	// work should instead enforce rest days between sessions is still an
	// open product question, so the two stay aliases until that is settled.
	for _, kind := range []DistributionType{DistributionWeekly, DistributionIntensive} {
		for _, t := range groups[kind] {
			n := OptimalDayCount(t.EstimatedDuration)
			if n > len(available) {
				n = len(available)
			}
			assign(splitTask(t, n, kind), available[:n])
		}
	}

	return days, unscheduled
}

// splitTask divides t into n standardized sub-tasks.
func splitTask(t domain.Task, n int, kind DistributionType) []SubTask {
	raw := SplitMinutes(taskMinutes(t.EstimatedDuration), n)
	subs := make([]SubTask, len(raw))
	for i, m := range raw {
		std := StandardizeMinutes(m)
		part := t.Clone()
		part.EstimatedDuration = time.Duration(std) * time.Minute
		part.DurationLabel = FormatDurationLabel(std)
		subs[i] = SubTask{
			Task:         part,
			SourceTaskID: t.ID,
			Part:         i + 1,
			Parts:        n,
			RawMinutes:   m,
			Distribution: kind,
		}
	}
	return subs
}
