package wallet

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(0, "USD"), "$0.00"},
		{M(-50, "USD"), "-$50.00"},
		{M(750, "EUR"), "€750.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(10, "USD").SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$10.00")
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(10.5, "USD")
	b := M(2, "USD")

	if got := a.Add(b); !got.Equal(M(12.5, "USD")) {
		t.Errorf("Add() = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(8.5, "USD")) {
		t.Errorf("Sub() = %s", got)
	}
	// the empty currency is weak, it adopts the other operand's
	if got := M(1, "").Add(b); got.Currency() != "USD" {
		t.Errorf("Add() currency = %q, want USD", got.Currency())
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(50).String(); got != "50.00%" {
		t.Errorf("String() = %q, want %q", got, "50.00%")
	}
	if got := Percent(12.5).SignedString(); got != "+12.50%" {
		t.Errorf("SignedString() = %q, want %q", got, "+12.50%")
	}
	if got := Percent(-3.2).SignedString(); got != "-3.20%" {
		t.Errorf("SignedString() = %q, want %q", got, "-3.20%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
}
