package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseState(t *testing.T) {
	b := NewBase(42, 17)

	w, h := b.Size()
	assert.Equal(t, 42, w)
	assert.Equal(t, 17, h)
	assert.False(t, b.Focused(), "panels start blurred")

	b.Focus()
	assert.True(t, b.Focused())
	b.Blur()
	assert.False(t, b.Focused())

	b.SetSize(0, 0)
	w, h = b.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

// Panels embed Base by value and re-expose the focus transitions as
// value-receiver methods returning the updated copy. The embedded state must
// travel with that copy and leave the original untouched.
type fakePanel struct {
	Base
}

func (p fakePanel) Focus() fakePanel {
	p.Base.Focus()
	return p
}

func (p fakePanel) Blur() fakePanel {
	p.Base.Blur()
	return p
}

func TestBaseEmbedding(t *testing.T) {
	p := fakePanel{Base: NewBase(10, 5)}

	focused := p.Focus()
	assert.True(t, focused.Focused())
	assert.False(t, p.Focused(), "the original copy stays blurred")

	blurred := focused.Blur()
	assert.False(t, blurred.Focused())

	focused.SetSize(20, 9)
	w, h := focused.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 9, h)
}
