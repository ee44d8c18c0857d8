package update_branch_schedule

// WeekdayHoursRequest часы работы на один день недели
// (0 = воскресенье ... 6 = суббота)
type WeekdayHoursRequest struct {
	Weekday    int     `json:"weekday"`
	IsOpen     bool    `json:"isOpen"`
	OpensAt    string  `json:"opensAt,omitempty"`    // "09:00"
	ClosesAt   string  `json:"closesAt,omitempty"`   // "19:00"
	LunchStart *string `json:"lunchStart,omitempty"` // "13:00"
	LunchEnd   *string `json:"lunchEnd,omitempty"`   // "14:00"
}

// UpdateBranchScheduleRequest HTTP request model
type UpdateBranchScheduleRequest struct {
	Days []WeekdayHoursRequest `json:"days"`
}
