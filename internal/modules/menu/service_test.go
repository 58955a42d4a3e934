package menu

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

type fakeMenuRepo struct {
	items map[int64]*Item
}

func (f *fakeMenuRepo) ListItems(context.Context) ([]Item, error) {
	out := []Item{}
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeMenuRepo) GetItem(_ context.Context, id int64) (*Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("menu item %d not found", id)
	}
	cp := *it
	return &cp, nil
}

func (f *fakeMenuRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	f.items[id].Stock = stock
	return nil
}

func (f *fakeMenuRepo) UpdatePrice(_ context.Context, id int64, price decimal.Decimal) error {
	f.items[id].Price = price
	return nil
}

func TestToggleStock(t *testing.T) {
	repo := &fakeMenuRepo{items: map[int64]*Item{
		1: {ID: 1, Name: "Chapati", Stock: 40},
		2: {ID: 2, Name: "Ugali", Stock: 0},
	}}
	svc := NewService(repo)

	item, err := svc.ToggleStock(context.Background(), 1)
	if err != nil {
		t.Fatalf("ToggleStock: %v", err)
	}
	if item.Stock != 0 {
		t.Errorf("in-stock item toggled to %d, want 0", item.Stock)
	}

	item, err = svc.ToggleStock(context.Background(), 2)
	if err != nil {
		t.Fatalf("ToggleStock: %v", err)
	}
	if item.Stock != restockQuantity {
		t.Errorf("out-of-stock item toggled to %d, want %d", item.Stock, restockQuantity)
	}

	// Toggling twice round-trips to out of stock.
	if _, err := svc.ToggleStock(context.Background(), 2); err != nil {
		t.Fatalf("ToggleStock: %v", err)
	}
	if got := repo.items[2].Stock; got != 0 {
		t.Errorf("double toggle left stock %d, want 0", got)
	}
}

func TestToggleStockUnknownItem(t *testing.T) {
	svc := NewService(&fakeMenuRepo{items: map[int64]*Item{}})
	if _, err := svc.ToggleStock(context.Background(), 99); err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestUpdatePrice(t *testing.T) {
	repo := &fakeMenuRepo{items: map[int64]*Item{
		1: {ID: 1, Name: "Chapati", Price: decimal.RequireFromString("30")},
	}}
	svc := NewService(repo)

	item, err := svc.UpdatePrice(context.Background(), 1, decimal.RequireFromString("35.50"))
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if want := decimal.RequireFromString("35.50"); !item.Price.Equal(want) {
		t.Errorf("price = %s, want %s", item.Price, want)
	}
}

func TestUpdatePriceRejectsNegative(t *testing.T) {
	repo := &fakeMenuRepo{items: map[int64]*Item{
		1: {ID: 1, Name: "Chapati", Price: decimal.RequireFromString("30")},
	}}
	svc := NewService(repo)

	if _, err := svc.UpdatePrice(context.Background(), 1, decimal.RequireFromString("-5")); err == nil {
		t.Fatal("expected error for negative price")
	}
	if want := decimal.RequireFromString("30"); !repo.items[1].Price.Equal(want) {
		t.Errorf("price changed to %s on rejected update", repo.items[1].Price)
	}
}
