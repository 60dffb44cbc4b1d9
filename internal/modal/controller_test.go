package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenSetsCategoryAndLocksScroll(t *testing.T) {
	doc := NewDocument()
	ctrl := NewController(doc)

	ctrl.Open("Master Forge")

	assert.True(t, ctrl.IsOpen())
	assert.Equal(t, "Master Forge", ctrl.PreselectedCategory())
	assert.True(t, doc.ScrollLocked())
	assert.Equal(t, "overflow-hidden", doc.BodyClass())
}

func TestOpenWhileOpenOverwritesCategory(t *testing.T) {
	doc := NewDocument()
	ctrl := NewController(doc)

	ctrl.Open("Starter Forge")
	ctrl.Open("")

	assert.True(t, ctrl.IsOpen())
	assert.Equal(t, "", ctrl.PreselectedCategory())

	// a second Open must not take a second lock
	ctrl.Close()
	assert.False(t, doc.ScrollLocked())
}

func TestCloseReleasesScroll(t *testing.T) {
	doc := NewDocument()
	ctrl := NewController(doc)

	ctrl.Open("quote")
	ctrl.Close()

	assert.False(t, ctrl.IsOpen())
	assert.False(t, doc.ScrollLocked())
	assert.Equal(t, "", doc.BodyClass())

	// closing twice is harmless
	ctrl.Close()
	assert.False(t, doc.ScrollLocked())
}

func TestTeardownReleasesOnAbruptExit(t *testing.T) {
	doc := NewDocument()

	func() {
		ctrl := NewController(doc)
		defer ctrl.Teardown()
		ctrl.Open("Hive-Mind Waitlist")
		assert.True(t, doc.ScrollLocked())
	}()

	assert.False(t, doc.ScrollLocked())
}

func TestReopenAfterClose(t *testing.T) {
	doc := NewDocument()
	ctrl := NewController(doc)

	ctrl.Open("Starter Forge")
	ctrl.Close()
	ctrl.Open("Master Forge")

	assert.True(t, doc.ScrollLocked())
	assert.Equal(t, "Master Forge", ctrl.Session().PreselectedCategory)
	ctrl.Teardown()
	assert.False(t, doc.ScrollLocked())
}

func TestReleaseFuncIsIdempotent(t *testing.T) {
	doc := NewDocument()
	other := doc.AcquireScrollLock()
	release := doc.AcquireScrollLock()

	release()
	release()

	assert.True(t, doc.ScrollLocked(), "the other holder still has the lock")
	other()
	assert.False(t, doc.ScrollLocked())
}

func TestOnOpenListener(t *testing.T) {
	ctrl := NewController(NewDocument())
	var got []string
	ctrl.OnOpen(func(category string) { got = append(got, category) })

	ctrl.Open("")
	ctrl.Open("Master Forge")

	assert.Equal(t, []string{"", "Master Forge"}, got)
	ctrl.Teardown()
}
