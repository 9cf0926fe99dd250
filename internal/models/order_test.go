package models

import "testing"

func TestCalculateSubtotal(t *testing.T) {
	items := []OrderItem{
		{Price: 10, Quantity: 2},
		{Price: 5, Quantity: 1},
	}

	subtotal := CalculateSubtotal(items)
	if subtotal != 25.00 {
		t.Errorf("expected subtotal 25.00, got %.2f", subtotal)
	}

	deliveryFee := 5.00
	if total := subtotal + deliveryFee; total != 30.00 {
		t.Errorf("expected total 30.00, got %.2f", total)
	}
}

func TestCalculateSubtotalEmpty(t *testing.T) {
	if subtotal := CalculateSubtotal(nil); subtotal != 0 {
		t.Errorf("expected 0 for empty item list, got %.2f", subtotal)
	}
}

func TestValidStatus(t *testing.T) {
	valid := []string{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "shipped", "PENDING", "done", "pending "}
	for _, s := range invalid {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentCash, PaymentCard, PaymentMobileMoney} {
		if !ValidPaymentMethod(m) {
			t.Errorf("expected %q to be valid", m)
		}
	}
	for _, m := range []string{"", "crypto", "Cash"} {
		if ValidPaymentMethod(m) {
			t.Errorf("expected %q to be invalid", m)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	admin := User{Role: RoleAdmin}
	customer := User{Role: RoleCustomer}

	if !admin.IsAdmin() {
		t.Error("admin role should be admin")
	}
	if customer.IsAdmin() {
		t.Error("customer role should not be admin")
	}
}
