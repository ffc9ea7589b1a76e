package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestProductVariant_EffectivePrice(t *testing.T) {
	v := model.ProductVariant{Price: 49.99}
	assert.Equal(t, 49.99, v.EffectivePrice())

	discount := 39.99
	v.DiscountPrice = &discount
	assert.Equal(t, 39.99, v.EffectivePrice())
}
