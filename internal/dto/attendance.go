package dto

import "time"

type CheckInRequestDTO struct {
	MemberID int `json:"member_id" example:"42"`
}

type AttendanceResponseDTO struct {
	ID          int       `json:"id" example:"301"`
	MemberID    int       `json:"member_id" example:"42"`
	Date        string    `json:"date" example:"2026-08-12"`
	CheckInTime time.Time `json:"check_in_time" example:"2026-08-12T09:15:00+03:00"`
}
