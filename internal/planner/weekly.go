package planner

import (
	"plannerhq/planner-app/internal/domain"
)

// CategoryCount tracks planned vs completed items for one category.
type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// DaySummary is the per-day rollup of a day record: task counts, completion
// rate in percent, minutes spent and per-category counters.
type DaySummary struct {
	Date           string                   `json:"date"`
	TotalTasks     int                      `json:"totalTasks"`
	CompletedTasks int                      `json:"completedTasks"`
	CompletionRate float64                  `json:"completionRate"`
	TimeSpent      int                      `json:"timeSpent"`
	Categories     map[string]CategoryCount `json:"categories"`
}

// WeekSummary aggregates seven day summaries.
type WeekSummary struct {
	StartDate      string                   `json:"startDate"`
	TotalTasks     int                      `json:"totalTasks"`
	CompletedTasks int                      `json:"completedTasks"`
	CompletionRate float64                  `json:"completionRate"`
	TotalTime      int                      `json:"totalTime"`
	CategoryTotals map[string]CategoryCount `json:"categoryTotals"`
	Days           []DaySummary             `json:"days"`
}

// SummarizeDay rolls a single day record into a DaySummary. Sections and
// time fields are taken from the explicit schema; the record's own map keys
// carry no meaning on their own. A nil record produces an empty summary.
func SummarizeDay(rec *domain.DayRecord, schema domain.DaySchema) DaySummary {
	summary := DaySummary{Categories: map[string]CategoryCount{}}
	if rec == nil {
		return summary
	}
	summary.Date = rec.Date

	for _, section := range schema.ChecklistSections {
		for _, item := range rec.Checklists[section] {
			summary.TotalTasks++
			if item.Completed {
				summary.CompletedTasks++
			}
			if item.Category == "" {
				continue
			}
			count := summary.Categories[item.Category]
			count.Total++
			if item.Completed {
				count.Completed++
			}
			summary.Categories[item.Category] = count
		}
	}

	for _, field := range schema.TimeFields {
		summary.TimeSpent += rec.TimeSpent[field]
	}

	summary.CompletionRate = completionRate(summary.CompletedTasks, summary.TotalTasks)
	return summary
}

// SummarizeWeek merges day summaries into week totals. Task and time counts
// are summed, category counters are merged per key, and the completion rate
// is recomputed from the summed counts (not averaged over days).
func SummarizeWeek(days []DaySummary) WeekSummary {
	week := WeekSummary{
		CategoryTotals: map[string]CategoryCount{},
		Days:           days,
	}
	if len(days) > 0 {
		week.StartDate = days[0].Date
	}

	for _, day := range days {
		week.TotalTasks += day.TotalTasks
		week.CompletedTasks += day.CompletedTasks
		week.TotalTime += day.TimeSpent
		for category, count := range day.Categories {
			total := week.CategoryTotals[category]
			total.Total += count.Total
			total.Completed += count.Completed
			week.CategoryTotals[category] = total
		}
	}

	week.CompletionRate = completionRate(week.CompletedTasks, week.TotalTasks)
	return week
}

// completionRate is completed/total as a percentage rounded to one decimal,
// defined as 0 when there are no tasks.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}
