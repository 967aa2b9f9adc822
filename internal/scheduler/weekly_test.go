package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleWeek_ReadTaskOnMondayAndWednesday(t *testing.T) {
	s := New(WithIDGenerator(seqIDs()))
	settings := domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		EarliestStart:    clock(18, 0),
		LatestEnd:        clock(22, 0),
	}
	week := domain.WeekPlan{
		ID:         "w1",
		WeekNumber: 1,
		Tasks: []domain.Task{{
			ID:                "read",
			Title:             "Read",
			EstimatedDuration: 5400 * time.Second,
			Difficulty:        domain.DifficultyMedium,
		}},
	}

	result := s.ScheduleWeek(contract.ScheduleRequest{
		WeekPlan:  week,
		WeekStart: monday,
		GoalID:    "g",
		PlanID:    "p",
		Settings:  &settings,
	})

	assert.True(t, result.Complete())
	require.Len(t, result.Scheduled, 2)

	mon, wed := result.Scheduled[0], result.Scheduled[1]
	assert.Equal(t, time.Monday, mon.ScheduledStart.Weekday())
	assert.Equal(t, time.Wednesday, wed.ScheduledStart.Weekday())
	for _, st := range result.Scheduled {
		assert.Equal(t, "Read", st.Title)
		assert.Equal(t, 45*time.Minute, st.Duration())
		assert.Equal(t, 18, st.ScheduledStart.Hour())
		assert.Equal(t, "g", st.GoalID)
		assert.Equal(t, "p", st.PlanID)
		assert.Equal(t, "w1", st.WeekPlanID)
		assert.Equal(t, 1, st.WeekNumber)
		assert.Equal(t, "read", st.SourceTaskID)
	}
	assert.Equal(t, 90, result.ScheduledMinutes())
}

func TestScheduleWeek_DefaultsWhenSettingsMissing(t *testing.T) {
	week := domain.WeekPlan{Tasks: []domain.Task{{ID: "t", EstimatedDuration: 3 * time.Hour}}}

	result := New().ScheduleWeek(contract.ScheduleRequest{WeekPlan: week, WeekStart: monday})

	require.Len(t, result.Scheduled, 3)
	for _, st := range result.Scheduled {
		assert.Equal(t, 60*time.Minute, st.Duration())
		assert.NotEmpty(t, st.ID)
	}
	assert.Equal(t, time.Monday, result.Scheduled[0].ScheduledStart.Weekday())
	assert.Equal(t, time.Wednesday, result.Scheduled[2].ScheduledStart.Weekday())
}

func TestScheduleWeek_WindowTooSmallReportsEveryShare(t *testing.T) {
	settings := domain.ScheduleSettings{
		SelectedWeekdays: []domain.Weekday{domain.Monday, domain.Tuesday},
		EarliestStart:    clock(18, 0),
		LatestEnd:        clock(18, 30),
	}
	week := domain.WeekPlan{Tasks: []domain.Task{{ID: "long", EstimatedDuration: 90 * time.Minute}}}

	result := New().ScheduleWeek(contract.ScheduleRequest{WeekPlan: week, WeekStart: monday, Settings: &settings})

	assert.Empty(t, result.Scheduled)
	require.Len(t, result.Unscheduled, 2)
	for _, u := range result.Unscheduled {
		assert.Equal(t, contract.UnscheduledCapacityExceeded, u.Code)
		assert.Equal(t, "long", u.SourceTaskID)
	}
	assert.False(t, result.Complete())
}

func TestScheduleWeek_NoDaysSelected(t *testing.T) {
	settings := domain.ScheduleSettings{}
	week := domain.WeekPlan{Tasks: []domain.Task{{ID: "a", EstimatedDuration: time.Hour}}}

	result := New().ScheduleWeek(contract.ScheduleRequest{WeekPlan: week, WeekStart: monday, Settings: &settings})

	assert.Empty(t, result.Scheduled)
	require.Len(t, result.Unscheduled, 1)
	assert.Equal(t, contract.UnscheduledNoAvailableDays, result.Unscheduled[0].Code)
}

func TestScheduleWeek_EmptyWeek(t *testing.T) {
	result := New().ScheduleWeek(contract.ScheduleRequest{WeekStart: monday})
	assert.Empty(t, result.Scheduled)
	assert.Empty(t, result.Unscheduled)
	assert.True(t, result.Complete())
}

func TestScheduleWeek_SundayStartUsesSundayFirstOffsets(t *testing.T) {
	settings := domain.ScheduleSettings{SelectedWeekdays: []domain.Weekday{domain.Monday}}
	week := domain.WeekPlan{Tasks: []domain.Task{{ID: "a", EstimatedDuration: 30 * time.Minute}}}

	result := New().ScheduleWeek(contract.ScheduleRequest{WeekPlan: week, WeekStart: sunday, Settings: &settings})

	require.Len(t, result.Scheduled, 1)
	assert.Equal(t, monday.Add(18*time.Hour), result.Scheduled[0].ScheduledStart)
}

// Property checks over random weeks: packed tasks never overlap, stay inside
// the window on selected days, and every share is either placed or reported.
func TestScheduleWeek_RandomWeeksHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	difficulties := []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

	for iter := 0; iter < 200; iter++ {
		var selected []domain.Weekday
		for wd := domain.Sunday; wd <= domain.Saturday; wd++ {
			if rng.Intn(2) == 0 {
				selected = append(selected, wd)
			}
		}
		startMin := 6*60 + rng.Intn(12*60)
		length := rng.Intn(5 * 60)
		endMin := startMin + length
		settings := domain.ScheduleSettings{
			SelectedWeekdays: selected,
			EarliestStart:    clock(startMin/60, startMin%60),
			LatestEnd:        clock(endMin/60, endMin%60),
		}

		var tasks []domain.Task
		count := 1 + rng.Intn(8)
		for i := 0; i < count; i++ {
			desc := ""
			if rng.Intn(4) == 0 {
				desc = "daily practice"
			}
			tasks = append(tasks, domain.Task{
				ID:                fmt.Sprintf("t%d", i),
				EstimatedDuration: time.Duration(5+rng.Intn(360)) * time.Minute,
				Difficulty:        difficulties[rng.Intn(len(difficulties))],
				Description:       desc,
			})
		}

		weekStart := monday.AddDate(0, 0, rng.Intn(7))
		cal := NewCalendar(time.UTC)
		result := New(WithCalendar(cal)).ScheduleWeek(contract.ScheduleRequest{
			WeekPlan:  domain.WeekPlan{Tasks: tasks},
			WeekStart: weekStart,
			Settings:  &settings,
		})

		days, early := Distribute(tasks, weekStart, settings, cal)
		shares := 0
		for _, subs := range days {
			shares += len(subs)
		}
		assert.Equal(t, shares+len(early), len(result.Scheduled)+len(result.Unscheduled), "iter %d: share accounting", iter)

		// Raw shares sum back to each source task's minutes.
		raw := map[string]int{}
		for _, subs := range days {
			for _, s := range subs {
				raw[s.SourceTaskID] += s.RawMinutes
			}
		}
		if len(selected) > 0 {
			for _, task := range tasks {
				assert.Equal(t, taskMinutes(task.EstimatedDuration), raw[task.ID], "iter %d: raw minutes for %s", iter, task.ID)
			}
		}

		byDay := map[string][]domain.ScheduledTask{}
		for _, st := range result.Scheduled {
			assert.True(t, settings.IsSelected(cal.WeekdayCode(st.ScheduledStart)), "iter %d: unselected day", iter)
			assert.False(t, st.ScheduledStart.Before(weekStart), "iter %d: before week", iter)
			assert.True(t, st.ScheduledStart.Before(weekStart.AddDate(0, 0, 7)), "iter %d: after week", iter)

			from, to := settings.Window()
			assert.False(t, st.ScheduledStart.Before(from.On(st.ScheduledStart, time.UTC)), "iter %d: starts before window", iter)
			assert.False(t, st.ScheduledEnd.After(to.On(st.ScheduledStart, time.UTC)), "iter %d: ends after window", iter)
			assert.Contains(t, StandardIncrements, int(st.Duration()/time.Minute))

			key := st.ScheduledStart.Format("2006-01-02")
			byDay[key] = append(byDay[key], st)
		}

		for day, list := range byDay {
			sort.Slice(list, func(i, j int) bool { return list[i].ScheduledStart.Before(list[j].ScheduledStart) })
			for i := 1; i < len(list); i++ {
				assert.False(t, list[i].ScheduledStart.Before(list[i-1].ScheduledEnd), "iter %d: overlap on %s", iter, day)
			}
		}
	}
}
