package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	var a Attr[string]
	assert.Equal(t, Unset, a.State())
	assert.False(t, a.HasValue())
	assert.False(t, a.IsSpecified())
	assert.Equal(t, "", a.Get())
	assert.Equal(t, "fallback", a.GetOr("fallback"))
}

func TestSet(t *testing.T) {
	t.Run("explicit value", func(t *testing.T) {
		var a Attr[int]
		a.Set(42)
		assert.True(t, a.IsSpecified())
		assert.Equal(t, Specified, a.State())
		assert.Equal(t, 42, a.Get())
	})

	t.Run("zero is a valid explicit value", func(t *testing.T) {
		var a Attr[int]
		a.SetDefault(7)
		a.Set(0)
		assert.True(t, a.IsSpecified())
		assert.Equal(t, 0, a.Get())
	})

	t.Run("empty string is a valid explicit value", func(t *testing.T) {
		a := DefaultOf("name")
		a.Set("")
		v, ok := a.Value()
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})
}

func TestSetDefault(t *testing.T) {
	t.Run("default is visible when nothing explicit", func(t *testing.T) {
		var a Attr[string]
		a.SetDefault("Name")
		assert.Equal(t, Default, a.State())
		assert.False(t, a.IsSpecified())
		assert.Equal(t, "Name", a.Get())
	})

	t.Run("later default replaces earlier default", func(t *testing.T) {
		var a Attr[string]
		a.SetDefault("first")
		a.SetDefault("second")
		assert.Equal(t, "second", a.Get())
	})

	t.Run("default never overrides explicit", func(t *testing.T) {
		var a Attr[string]
		a.Set("explicit")
		a.SetDefault("convention")
		assert.Equal(t, "explicit", a.Get())
		assert.Equal(t, Specified, a.State())
	})
}

func TestUnset(t *testing.T) {
	a := Of(3)
	a.SetDefault(4)
	a.Unset()
	assert.Equal(t, Unset, a.State())
	assert.Equal(t, 0, a.Get())
}

func TestMerge(t *testing.T) {
	t.Run("explicit value is copied", func(t *testing.T) {
		a := DefaultOf(10)
		a.Merge(Of(20))
		assert.True(t, a.IsSpecified())
		assert.Equal(t, 20, a.Get())
	})

	t.Run("unset source does not clobber", func(t *testing.T) {
		a := Of(10)
		a.Merge(Attr[int]{})
		assert.Equal(t, 10, a.Get())
	})

	t.Run("default only fills an empty default layer", func(t *testing.T) {
		a := DefaultOf(1)
		a.Merge(DefaultOf(2))
		assert.Equal(t, 1, a.Get())

		var b Attr[int]
		b.Merge(DefaultOf(2))
		assert.Equal(t, Default, b.State())
		assert.Equal(t, 2, b.Get())
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Unset", Attr[int]{}.String())
	assert.Equal(t, "Default(5)", DefaultOf(5).String())
	assert.Equal(t, "Specified(hello)", Of("hello").String())
	assert.Equal(t, "Specified", Specified.String())
}
