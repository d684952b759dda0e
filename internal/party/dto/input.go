package dto

type CreateCustomerInput struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name" binding:"required"`
	DNI      string `json:"dni" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type_customer"`
	Gender   string `json:"gender"`
}

type UpdateCustomerInput struct {
	ID string `json:"-"`
	CreateCustomerInput
}

type CreateSupplierInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type UpdateSupplierInput struct {
	ID string `json:"-"`
	CreateSupplierInput
}
