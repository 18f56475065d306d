package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMovieEqual(t *testing.T) {
	base := NewMovie("The Wizard of Oz", "Kansas is home!", 100*time.Minute, decimal.NewFromFloat(12.5), 0)

	t.Run("same fields are equal", func(t *testing.T) {
		same := NewMovie("The Wizard of Oz", "Kansas is home!", 100*time.Minute, decimal.NewFromFloat(12.5), 0)
		assert.True(t, base.Equal(same))
	})

	t.Run("price compared by value not representation", func(t *testing.T) {
		rescaled := NewMovie("The Wizard of Oz", "Kansas is home!", 100*time.Minute, decimal.RequireFromString("12.50"), 0)
		assert.True(t, base.Equal(rescaled))
	})

	t.Run("any differing field breaks equality", func(t *testing.T) {
		differentTitle := NewMovie("The Batman", "Kansas is home!", 100*time.Minute, decimal.NewFromFloat(12.5), 0)
		differentPrice := NewMovie("The Wizard of Oz", "Kansas is home!", 100*time.Minute, decimal.NewFromFloat(13), 0)
		differentCode := NewMovie("The Wizard of Oz", "Kansas is home!", 100*time.Minute, decimal.NewFromFloat(12.5), 1)

		assert.False(t, base.Equal(differentTitle))
		assert.False(t, base.Equal(differentPrice))
		assert.False(t, base.Equal(differentCode))
	})

	t.Run("nil handling", func(t *testing.T) {
		var none *Movie
		assert.False(t, base.Equal(nil))
		assert.False(t, none.Equal(base))
		assert.True(t, none.Equal(nil))
	})
}
