package request_models

type ActivityRequest struct {
	HolidayID   string  `form:"holiday_id" binding:"required,uuid4"`
	Name        string  `form:"name" binding:"required,max=100"`
	Description *string `form:"description"`
	Price       float64 `form:"price" binding:"gte=0"`
	StartDate   string  `form:"start_date" binding:"required"`
	EndDate     string  `form:"end_date" binding:"required"`

	LocationFields
	PictureFields
}
