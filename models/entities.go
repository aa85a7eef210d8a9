package models

// The six resources exposed by the API. JSON field names are part of the wire
// contract and must not change; gorm derives the column names.

// User is an account that can log in and own bank details.
// The password is write-only: handlers blank it before rendering and the
// omitempty keeps the key out of every response body.
type User struct {
	Model
	Username     string `json:"username" binding:"required,min=3,max=30"`
	Password     string `json:"password,omitempty" binding:"required,min=6"`
	Email        string `json:"email" binding:"required,email" gorm:"index:idx_user_email,unique"`
	MobileNumber string `json:"mobileNumber" binding:"required,numeric,len=10"`
	IsActive     bool   `json:"isActive"`
}

// Client is a billable party. GSTIN is optional but format-checked when sent.
type Client struct {
	Model
	Name         string `json:"name" binding:"required,min=3,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Address      string `json:"address" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,numeric,len=10"`
	GSTIN        string `json:"GSTIN" binding:"omitempty,len=15,alphanum"`
}

// BankDetails belongs to a User.
type BankDetails struct {
	Model
	AccountNumber string `json:"accountNumber" binding:"required,numeric,min=10,max=20"`
	IFSC          string `json:"ifsc" binding:"required,ifsc"`
	BankName      string `json:"bankName" binding:"required,min=3,max=50"`
	UserID        uint   `json:"userId" binding:"required"`
}

// Invoice belongs to a Client and has many ItemsDetails.
type Invoice struct {
	Model
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
	DueDate       string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	ClientID      uint   `json:"clientId" binding:"required"`
}

// ItemsDetails is a single line item on an invoice.
type ItemsDetails struct {
	Model
	ItemsName string  `json:"itemsName" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Rate      float64 `json:"rate" binding:"required,gt=0"`
	InvoiceID uint    `json:"invoiceId" binding:"required"`
}

// UserClientRelations joins users to the clients they work with.
type UserClientRelations struct {
	Model
	UserID   uint `json:"userId" binding:"required"`
	ClientID uint `json:"clientId" binding:"required"`
}

// All lists one zero value per resource table, in migration order (referenced
// tables first).
func All() []any {
	return []any{
		&User{},
		&Client{},
		&BankDetails{},
		&Invoice{},
		&ItemsDetails{},
		&UserClientRelations{},
	}
}
