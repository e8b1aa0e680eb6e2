package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector(t *testing.T) {
	d := NewDetector()

	assert.True(t, d.IsProfane("that trip was complete shit"))
	assert.True(t, d.IsProfane("fuck this charger"))

	assert.False(t, d.IsProfane("lovely road trip through Norway"))
	assert.False(t, d.IsProfane("fast charging on the way to Oslo"))
}
