package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	u := User{Password: "password123"}
	require.NoError(t, u.HashPassword())
	assert.NotEqual(t, "password123", u.Password)
	assert.NoError(t, u.CheckPassword("password123"))
	assert.Error(t, u.CheckPassword("wrong"))
}

func TestValidateUserCollectsAllFailures(t *testing.T) {
	u := User{
		Username:     "ab",
		Password:     "123",
		Email:        "invalidemail",
		MobileNumber: "12345",
	}
	err := ValidateStruct(u)
	require.Error(t, err)

	verr, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verr, 4)

	details := ValidationDetails(verr)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		for field := range d {
			fields = append(fields, field)
		}
	}
	// every failing field is reported, keyed by its JSON name, in field order
	assert.Equal(t, []string{"username", "password", "email", "mobileNumber"}, fields)
}

func TestValidateValidUser(t *testing.T) {
	u := User{
		Username:     "testuser",
		Password:     "password123",
		Email:        "testuser@example.com",
		MobileNumber: "1234567890",
	}
	assert.NoError(t, ValidateStruct(u))
}

func TestValidateIFSC(t *testing.T) {
	valid := BankDetails{
		AccountNumber: "1234567890123",
		IFSC:          "HDFC0001234",
		BankName:      "HDFC Bank",
		UserID:        1,
	}
	assert.NoError(t, ValidateStruct(valid))

	valid.IFSC = "hdfc0001234"
	assert.Error(t, ValidateStruct(valid))
}

func TestValidateInvoiceDueDate(t *testing.T) {
	inv := Invoice{InvoiceNumber: "INV-1", DueDate: "2026-09-30", ClientID: 1}
	assert.NoError(t, ValidateStruct(inv))

	inv.DueDate = "30/09/2026"
	assert.Error(t, ValidateStruct(inv))

	inv.DueDate = ""
	assert.Error(t, ValidateStruct(inv))
}

func TestValidateClientGSTIN(t *testing.T) {
	c := Client{
		Name:         "Acme Traders",
		Email:        "billing@acme.example.com",
		Address:      "14 Market Street",
		MobileNumber: "9876543210",
	}
	assert.NoError(t, ValidateStruct(c), "absent GSTIN is allowed")

	c.GSTIN = "22AAAAA0000A1Z5"
	assert.NoError(t, ValidateStruct(c))

	c.GSTIN = "short"
	assert.Error(t, ValidateStruct(c))
}

func TestValidateItemsDetails(t *testing.T) {
	item := ItemsDetails{ItemsName: "Steel rods", Quantity: 5, Rate: 129.5, InvoiceID: 1}
	assert.NoError(t, ValidateStruct(item))

	item.Quantity = 0
	assert.Error(t, ValidateStruct(item))

	item.Quantity = 5
	item.Rate = -1
	assert.Error(t, ValidateStruct(item))
}
