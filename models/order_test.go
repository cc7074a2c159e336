package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOrder() Order {
	return Order{
		WaitressID:  1,
		PrepStation: StationKitchen,
		TotalPrice:  100,
		Items: []OrderItem{
			{MenuItemID: 1, NameAm: "ዶሮ ወጥ", NameEn: "Doro Wot", Quantity: 2, Price: 50},
		},
	}
}

func TestOrderValidate(t *testing.T) {
	order := validOrder()
	assert.NoError(t, order.Validate())
}

func TestOrderValidateRejectsEmptyItems(t *testing.T) {
	order := validOrder()
	order.Items = nil
	err := order.Validate()
	assert.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestOrderValidateRejectsZeroQuantity(t *testing.T) {
	order := validOrder()
	order.Items[0].Quantity = 0
	err := order.Validate()
	assert.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestOrderValidateRejectsMissingStation(t *testing.T) {
	order := validOrder()
	order.PrepStation = ""
	assert.Error(t, order.Validate())
}

func TestOrderValidateRejectsMissingName(t *testing.T) {
	order := validOrder()
	order.Items[0].NameAm = ""
	assert.Error(t, order.Validate())
}

func TestOrderValidateAllowsOptionalEnglishName(t *testing.T) {
	order := validOrder()
	order.Items[0].NameEn = ""
	assert.NoError(t, order.Validate())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusReady, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Cooking"))
	assert.False(t, ValidStatus("pending"), "status values are case sensitive")
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentCash, PaymentCard, PaymentMobile, PaymentMixed} {
		assert.True(t, ValidPaymentMethod(m), m)
	}
	assert.False(t, ValidPaymentMethod("Barter"))
}
