package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	a := assert.New(t)

	a.True(FromInt(3).Equal(Min(FromInt(3), FromInt(5))))
	a.True(FromInt(3).Equal(Min(FromInt(5), FromInt(3))))
	a.True(FromInt(5).Equal(Max(FromInt(3), FromInt(5))))
	a.True(FromFloat(-1.5).Equal(Min(FromFloat(-1.5), Zero)))
}

func TestClamp(t *testing.T) {
	a := assert.New(t)

	a.True(FromInt(10).Equal(Clamp(FromInt(15), FromInt(10))))
	a.True(FromInt(7).Equal(Clamp(FromInt(7), FromInt(10))))
	a.True(Zero.Equal(Clamp(FromInt(-2), FromInt(10))))
	a.True(Zero.Equal(Clamp(FromInt(5), FromInt(-1))))
}

func TestFormat(t *testing.T) {
	a := assert.New(t)

	a.Equal("$12.50", Format(FromFloat(12.5)))
	a.Equal("-$9.00", Format(FromInt(-9)))
	a.Equal("$0.00", Format(Zero))
}
