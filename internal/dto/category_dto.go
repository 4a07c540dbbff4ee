package dto

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=60"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=60"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
