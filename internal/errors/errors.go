// internal/errors/errors.go
package appErrors

import "fmt"

// ErrPlanNotFound is returned when no saved plan has the given ID
type ErrPlanNotFound struct {
    PlanID string
}

func (e *ErrPlanNotFound) Error() string {
    return fmt.Sprintf("plan with ID %s not found", e.PlanID)
}

// Helper constructor
func NewPlanNotFound(id string) error {
    return &ErrPlanNotFound{PlanID: id}
}

// ErrWeekOutOfRange is returned for a week number outside the schedule
type ErrWeekOutOfRange struct {
    Week  int
    Weeks int
}

func (e *ErrWeekOutOfRange) Error() string {
    return fmt.Sprintf("week %d is outside the %d-week schedule", e.Week, e.Weeks)
}

func NewWeekOutOfRange(week, weeks int) error {
    return &ErrWeekOutOfRange{Week: week, Weeks: weeks}
}

// ErrActivityNotScheduled is returned when approving an activity that week does not run
type ErrActivityNotScheduled struct {
    Week     int
    Activity string
}

func (e *ErrActivityNotScheduled) Error() string {
    return fmt.Sprintf("%s is not scheduled in week %d", e.Activity, e.Week)
}

func NewActivityNotScheduled(week int, activity string) error {
    return &ErrActivityNotScheduled{Week: week, Activity: activity}
}
