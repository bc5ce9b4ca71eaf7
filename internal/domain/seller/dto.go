package seller

type CreateSellerRequest struct {
	BusinessName   string `json:"business_name" validate:"required"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	AccountManager string `json:"account_manager"`
	ServiceNote    string `json:"service_note"`
}

type UpdateSellerRequest struct {
	BusinessName   string `json:"business_name" validate:"required"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	AccountManager string `json:"account_manager"`
	ServiceNote    string `json:"service_note"`
}
