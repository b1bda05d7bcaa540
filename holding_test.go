package wallet

import (
	"context"
	"errors"
	"testing"
)

// acme resolves the reference row: 10 ACME bought at 50 on 2024-01-01.
func acme(t *testing.T, p MarketDataProvider) Holding {
	t.Helper()
	raw := RawHolding{Symbol: "ACME", Quantity: 10, PricePaid: dec(50), Date: d("2024-01-01")}
	h, err := ResolveHolding(context.Background(), raw, p)
	if err != nil {
		t.Fatalf("ResolveHolding() error = %v", err)
	}
	return h
}

func TestResolveHolding(t *testing.T) {
	p := acmeProvider()
	h := acme(t, p)

	if h.Ticker() != "ACME" || h.Quantity() != 10 {
		t.Errorf("got %s, want 10 x ACME", h)
	}
	if h.Stock().Origin() != UserDefined {
		t.Errorf("Origin() = %v, want %v", h.Stock().Origin(), UserDefined)
	}
	// the acquisition instant is the market close of the row's day
	if got := h.Stock().Date(); got.Hour() != 16 || DateOf(got) != d("2024-01-01") {
		t.Errorf("Date() = %v, want 2024-01-01 16:00 UTC", got)
	}
}

func TestHoldingValuation(t *testing.T) {
	ctx := context.Background()
	p := acmeProvider()
	h := acme(t, p)

	if got := h.InitialValue(); !got.Equal(dec(500)) {
		t.Errorf("InitialValue() = %s, want 500", got)
	}

	current, err := h.ValueAt(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatalf("ValueAt() error = %v", err)
	}
	if !current.Equal(dec(750)) {
		t.Errorf("ValueAt() = %s, want 750", current)
	}

	income, err := h.DividendIncome(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatalf("DividendIncome() error = %v", err)
	}
	if !income.Equal(dec(10)) {
		t.Errorf("DividendIncome() = %s, want 10", income)
	}
}

// TestValuationLinearity checks value scales with quantity: 20 shares are
// worth exactly twice 10 shares, dividends included.
func TestValuationLinearity(t *testing.T) {
	ctx := context.Background()
	p := acmeProvider()

	single := acme(t, p)
	double := NewHolding(single.Stock(), 20)

	v1, err := single.ValueAt(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatal(err)
	}
	v2, err := double.ValueAt(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatal(err)
	}
	if !v2.Equal(v1.Mul(dec(2))) {
		t.Errorf("ValueAt(20 shares) = %s, want 2 x %s", v2, v1)
	}

	i1, err := single.DividendIncome(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatal(err)
	}
	i2, err := double.DividendIncome(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatal(err)
	}
	if !i2.Equal(i1.Mul(dec(2))) {
		t.Errorf("DividendIncome(20 shares) = %s, want 2 x %s", i2, i1)
	}
}

// TestDividendWindow checks the window edges: a dividend detached before the
// acquisition day is out, one detached on the end day is out, one detached on
// the acquisition day itself is in.
func TestDividendWindow(t *testing.T) {
	ctx := context.Background()
	p := NewMemProvider(SnapBackward)
	p.AddPrice("ACME", d("2024-01-01"), dec(50))
	p.AddDividend("ACME", d("2023-12-15"), dec(3.0)) // before ownership
	p.AddDividend("ACME", d("2024-01-01"), dec(2.0)) // acquisition day
	p.AddDividend("ACME", d("2024-03-01"), dec(1.0))
	p.AddDividend("ACME", d("2024-06-01"), dec(5.0)) // on the end day, excluded

	h := acme(t, p)
	income, err := h.DividendIncome(ctx, p, d("2024-06-01"))
	if err != nil {
		t.Fatalf("DividendIncome() error = %v", err)
	}
	// (2.0 + 1.0) per share x 10 shares
	if !income.Equal(dec(30)) {
		t.Errorf("DividendIncome() = %s, want 30", income)
	}
}

func TestValueAtNoData(t *testing.T) {
	ctx := context.Background()
	p := NewMemProvider(SnapNone)
	p.AddPrice("ACME", d("2024-01-01"), dec(50))

	h := acme(t, p)
	if _, err := h.ValueAt(ctx, p, d("2024-06-01")); !errors.Is(err, ErrNoPriceData) {
		t.Errorf("ValueAt() error = %v, want ErrNoPriceData", err)
	}
}
