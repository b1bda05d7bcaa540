package wallet

import (
	"context"
	"errors"
	"testing"
)

func TestNewUserStock(t *testing.T) {
	ctx := context.Background()
	p := acmeProvider()

	s, err := NewUserStock(ctx, p, "ACME", dec(50), d("2024-01-01").Close())
	if err != nil {
		t.Fatalf("NewUserStock() error = %v", err)
	}
	if s.Ticker() != "ACME" {
		t.Errorf("Ticker() = %q, want ACME", s.Ticker())
	}
	if !s.Price().Equal(dec(50)) {
		t.Errorf("Price() = %s, want 50", s.Price())
	}
	if s.Origin() != UserDefined {
		t.Errorf("Origin() = %v, want %v", s.Origin(), UserDefined)
	}
	if DateOf(s.Date()) != d("2024-01-01") {
		t.Errorf("Date() = %v, want 2024-01-01", s.Date())
	}
}

func TestNewUserStockRejections(t *testing.T) {
	ctx := context.Background()
	p := acmeProvider()

	if _, err := NewUserStock(ctx, p, "", dec(50), d("2024-01-01").Close()); !errors.Is(err, ErrInvalidTicker) {
		t.Errorf("empty ticker: error = %v, want ErrInvalidTicker", err)
	}
	if _, err := NewUserStock(ctx, p, "NOPE", dec(50), d("2024-01-01").Close()); !errors.Is(err, ErrInvalidTicker) {
		t.Errorf("unknown ticker: error = %v, want ErrInvalidTicker", err)
	}
	if _, err := NewUserStock(ctx, p, "ACME", dec(-1), d("2024-01-01").Close()); err == nil {
		t.Errorf("negative price: expected an error")
	}
	// transport failures pass through, they are not a verdict on the ticker
	if _, err := NewUserStock(ctx, downProvider{}, "ACME", dec(50), d("2024-01-01").Close()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("backend down: error = %v, want ErrProviderUnavailable", err)
	}
}

func TestNewMarketStock(t *testing.T) {
	ctx := context.Background()
	p := acmeProvider()

	s, err := NewMarketStock(ctx, p, "ACME", d("2024-06-01").Close())
	if err != nil {
		t.Fatalf("NewMarketStock() error = %v", err)
	}
	if !s.Price().Equal(dec(75)) {
		t.Errorf("Price() = %s, want 75 (the backend quote)", s.Price())
	}
	if s.Origin() != MarketProvider {
		t.Errorf("Origin() = %v, want %v", s.Origin(), MarketProvider)
	}

	if _, err := NewMarketStock(ctx, p, "NOPE", d("2024-06-01").Close()); !errors.Is(err, ErrInvalidTicker) {
		t.Errorf("unknown ticker: error = %v, want ErrInvalidTicker", err)
	}
}
