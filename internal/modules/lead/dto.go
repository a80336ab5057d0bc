package lead

type SubmitLeadRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name"`
	Company         string `json:"company"`
	ServiceInterest string `json:"service_interest"`
	Source          string `json:"source"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
