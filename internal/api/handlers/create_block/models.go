package create_block

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	BranchID  int64   `json:"branchId"`
	Kind      string  `json:"kind"`                // short_break, partial_block, full_day_closure
	Date      *string `json:"date,omitempty"`      // "2026-09-15"
	Weekdays  []int   `json:"weekdays,omitempty"`  // 0 = воскресенье ... 6 = суббота
	StartTime *string `json:"startTime,omitempty"` // "13:00"
	EndTime   *string `json:"endTime,omitempty"`   // "13:30"
	Reason    *string `json:"reason,omitempty"`
}
