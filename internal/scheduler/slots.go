package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SlotLength is the granularity of generated time slots.
const SlotLength = 30 * time.Minute

// TimeSlot is a candidate study window within one day. Slots only live for
// the duration of a packing pass.
type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
	TaskID    string // scheduled task occupying the slot, if any
}

func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// GenerateSlots chops the day's study window into 30-minute slots. The last
// slot is clipped to the window end. A window whose start is not before its
// end yields no slots.
func GenerateSlots(date time.Time, settings domain.ScheduleSettings, cal Calendar) []TimeSlot {
	from, to := settings.Window()
	windowStart := from.On(date, cal.loc())
	windowEnd := to.On(date, cal.loc())

	var slots []TimeSlot
	for start := windowStart; start.Before(windowEnd); start = start.Add(SlotLength) {
		end := start.Add(SlotLength)
		if end.After(windowEnd) {
			end = windowEnd
		}
		slots = append(slots, TimeSlot{Start: start, End: end, Available: true})
	}
	return slots
}

// Origin identifies where packed tasks come from. The ids are passed through
// to every ScheduledTask unchanged.
type Origin struct {
	GoalID     string
	PlanID     string
	WeekPlanID string
	WeekNumber int
}

// PackDay greedily assigns the day's sub-tasks to slots, easiest and
// shortest first. Each task takes the first single slot long enough for it,
// otherwise the first run of contiguous free slots that covers it. Slots
// are marked unavailable as they are taken; tasks that fit nowhere are
// returned as unscheduled. Scheduled tasks come back in processing order.
//
// A task ends exactly start+duration; the remainder of its last slot stays
// occupied.
func PackDay(
	day time.Time,
	subs []SubTask,
	slots []TimeSlot,
	origin Origin,
	newID func() string,
) ([]domain.ScheduledTask, []contract.UnscheduledTask) {
	ordered := make([]SubTask, len(subs))
	copy(ordered, subs)
	sortForPacking(ordered)

	var scheduled []domain.ScheduledTask
	var unscheduled []contract.UnscheduledTask

	for _, st := range ordered {
		required := st.Task.EstimatedDuration

		first, last, ok := findSingleSlot(slots, required)
		if !ok {
			first, last, ok = findSlotRun(slots, required)
		}
		if !ok {
			d := day
			u := contract.UnscheduledTask{
				Task:         st.Task,
				SourceTaskID: st.SourceTaskID,
				Part:         st.Part,
				Parts:        st.Parts,
				Date:         &d,
				Code:         contract.UnscheduledCapacityExceeded,
				Message:      fmt.Sprintf("no free run of %s left on %s", required, day.Format("2006-01-02")),
			}
			if len(slots) == 0 {
				u.Code = contract.UnscheduledEmptyWindow
				u.Message = "study window for the day is empty"
			}
			unscheduled = append(unscheduled, u)
			continue
		}

		id := newID()
		for i := first; i <= last; i++ {
			slots[i].Available = false
			slots[i].TaskID = id
		}

		start := slots[first].Start
		scheduled = append(scheduled, domain.ScheduledTask{
			ID:             id,
			Task:           st.Task,
			SourceTaskID:   st.SourceTaskID,
			Part:           st.Part,
			Parts:          st.Parts,
			GoalID:         origin.GoalID,
			PlanID:         origin.PlanID,
			WeekPlanID:     origin.WeekPlanID,
			WeekNumber:     origin.WeekNumber,
			ScheduledStart: start,
			ScheduledEnd:   start.Add(required),
			Status:         domain.ScheduledPending,
		})
	}

	return scheduled, unscheduled
}

// sortForPacking orders by difficulty, then duration; ties keep input order.
func sortForPacking(subs []SubTask) {
	sort.SliceStable(subs, func(i, j int) bool {
		a, b := subs[i].Task, subs[j].Task
		if ra, rb := a.Difficulty.Rank(), b.Difficulty.Rank(); ra != rb {
			return ra < rb
		}
		return a.EstimatedDuration < b.EstimatedDuration
	})
}

func findSingleSlot(slots []TimeSlot, required time.Duration) (int, int, bool) {
	for i, s := range slots {
		if s.Available && s.Duration() >= required {
			return i, i, true
		}
	}
	return 0, 0, false
}

// findSlotRun returns the first run of available, back-to-back slots whose
// combined length reaches required. The run stops at the slot where the
// requirement is first met.
func findSlotRun(slots []TimeSlot, required time.Duration) (int, int, bool) {
	for i := range slots {
		if !slots[i].Available {
			continue
		}
		var acc time.Duration
		for j := i; j < len(slots); j++ {
			if !slots[j].Available {
				break
			}
			if j > i && !slots[j-1].End.Equal(slots[j].Start) {
				break
			}
			acc += slots[j].Duration()
			if acc >= required {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
