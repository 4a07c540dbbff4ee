package dto

// OnboardRequest creates the user's store profile and seeds the default
// category set in one transaction.
type OnboardRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=120"`
	Address  *string `json:"address"  validate:"omitempty,max=200"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=120"`
	Address  *string `json:"address"  validate:"omitempty,max=200"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Currency *string `json:"currency" validate:"omitempty,len=3"`
}

type StoreResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Currency string  `json:"currency"`
}
