package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 25.50, Round2(25.499999999999996))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 10.0, Round2(10))
	assert.Equal(t, -0.13, Round2(-0.125))
}

func TestCartTotal(t *testing.T) {
	lines := []CartLine{
		{ProductPrice: 10.00, Quantity: 2},
		{ProductPrice: 5.50, Quantity: 1},
	}
	assert.Equal(t, 25.50, CartTotal(lines))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestCartTotal_FractionalCents(t *testing.T) {
	// Each line rounds to cents before summing.
	lines := []CartLine{
		{ProductPrice: 0.333, Quantity: 3}, // 0.999 -> 1.00
		{ProductPrice: 1.111, Quantity: 2}, // 2.222 -> 2.22
	}
	assert.Equal(t, 3.22, CartTotal(lines))
}
