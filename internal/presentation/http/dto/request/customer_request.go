package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}
