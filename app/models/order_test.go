package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderStatusNew, OrderStatusInProgress, true},
		{OrderStatusInProgress, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusNew, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusNew, false},
		{OrderStatusReady, OrderStatusInProgress, false},
		{OrderStatusNew, OrderStatusNew, false},
		{OrderStatusNew, "lost", false},
		{"lost", OrderStatusNew, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusNew))
	assert.True(t, ValidOrderStatus(OrderStatusCompleted))
	assert.False(t, ValidOrderStatus("shipped"))
}

func TestValidBuyingType(t *testing.T) {
	assert.True(t, ValidBuyingType(BuyingTypeSelf))
	assert.True(t, ValidBuyingType(BuyingTypeDelivery))
	assert.False(t, ValidBuyingType("teleport"))
}
