package dto

type CreateActivityTypeRequestDTO struct {
	Name        string `json:"name" example:"Bodybuilding"`
	Description string `json:"description,omitempty" example:"Free weights and machines"`
}

type ActivityTypeResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Bodybuilding"`
	Description string `json:"description,omitempty" example:"Free weights and machines"`
	IsActive    bool   `json:"is_active" example:"true"`
}

type CreatePlanRequestDTO struct {
	ActivityTypeID int     `json:"activity_type_id" example:"1"`
	Name           string  `json:"name" example:"Monthly"`
	DurationDays   int     `json:"duration_days" example:"30"`
	Price          float64 `json:"price" example:"200"`
}

type PlanResponseDTO struct {
	ID             int     `json:"id" example:"3"`
	ActivityTypeID int     `json:"activity_type_id" example:"1"`
	Name           string  `json:"name" example:"Monthly"`
	DurationDays   int     `json:"duration_days" example:"30"`
	Price          float64 `json:"price" example:"200"`
	IsActive       bool    `json:"is_active" example:"true"`
}
