package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Classic White T-Shirt", "classic-white-t-shirt"},
		{"  Denim  Jacket  ", "denim-jacket"},
		{"Café & Crème!!", "caf-crme"},
		{"UPPER lower", "upper-lower"},
		{"hy---phens", "hy-phens"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, model.Slugify(c.name), "input=%q", c.name)
	}
}

func TestBuildSKU(t *testing.T) {
	assert.Equal(t, "12-M-NAVYBLUE", model.BuildSKU(12, "M", "Navy Blue"))
	assert.Equal(t, "1-XL-BLACK", model.BuildSKU(1, "xl", "black"))

	//同じ入力からは常に同じSKU
	assert.Equal(t, model.BuildSKU(5, "S", "Red"), model.BuildSKU(5, "S", "Red"))
}
