package request_models

// LocationFields is embedded in multipart forms for holidays and activities.
type LocationFields struct {
	Street     *string `form:"street"`
	Number     *string `form:"number"`
	Locality   string  `form:"locality" binding:"required"`
	PostalCode string  `form:"postal_code" binding:"required"`
	Country    string  `form:"country" binding:"required"`
}

// PictureFields drive the picture update rules; the file itself is read
// from the "file" part.
type PictureFields struct {
	DeleteImage bool `form:"delete_image"`
}

type HolidayRequest struct {
	Name        string  `form:"name" binding:"required,max=100"`
	Description *string `form:"description"`
	// RFC3339 or YYYY-MM-DD
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	IsPublish bool   `form:"is_publish"`

	LocationFields
	PictureFields
}
