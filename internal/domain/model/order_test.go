package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, model.OrderStatusPending.Valid())
	assert.True(t, model.OrderStatusConfirmed.Valid())
	assert.True(t, model.OrderStatusProcessing.Valid())
	assert.True(t, model.OrderStatusShipped.Valid())
	assert.True(t, model.OrderStatusDelivered.Valid())
	assert.True(t, model.OrderStatusCancelled.Valid())

	assert.False(t, model.OrderStatus("PAID").Valid())
	assert.False(t, model.OrderStatus("").Valid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusShipped, false},
		{model.OrderStatusPending, model.OrderStatusDelivered, false},

		{model.OrderStatusConfirmed, model.OrderStatusProcessing, true},
		{model.OrderStatusConfirmed, model.OrderStatusCancelled, true},
		{model.OrderStatusConfirmed, model.OrderStatusPending, false},

		{model.OrderStatusProcessing, model.OrderStatusShipped, true},
		{model.OrderStatusProcessing, model.OrderStatusCancelled, true},
		{model.OrderStatusProcessing, model.OrderStatusDelivered, false},

		{model.OrderStatusShipped, model.OrderStatusDelivered, true},
		//出荷後はキャンセル不可
		{model.OrderStatusShipped, model.OrderStatusCancelled, false},

		//終端ステータスからはどこへも行けない
		{model.OrderStatusDelivered, model.OrderStatusProcessing, false},
		{model.OrderStatusDelivered, model.OrderStatusCancelled, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusConfirmed, false},
	}

	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		assert.Equal(t, c.want, got, "%s -> %s", c.from, c.to)
	}
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, model.PaymentStatusPending.Valid())
	assert.True(t, model.PaymentStatusPaid.Valid())
	assert.True(t, model.PaymentStatusFailed.Valid())
	assert.True(t, model.PaymentStatusRefunded.Valid())

	assert.False(t, model.PaymentStatus("cancelled").Valid())
	assert.False(t, model.PaymentStatus("").Valid())
}
