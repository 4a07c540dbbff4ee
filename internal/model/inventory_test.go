package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         InventoryStatus
	}{
		{"zero quantity is out of stock", 0, 5, StatusOutOfStock},
		{"zero quantity with no reorder level", 0, 0, StatusOutOfStock},
		{"at reorder level is low", 5, 5, StatusLowInStock},
		{"below reorder level is low", 3, 5, StatusLowInStock},
		{"just above reorder level is in stock", 6, 5, StatusInStock},
		{"reorder level unset never flags low", 1, 0, StatusInStock},
		{"plenty of stock", 100, 10, StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStockStatus(tc.quantity, tc.reorderLevel))
		})
	}
}
