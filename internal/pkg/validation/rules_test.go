package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("A1"))
	assert.True(t, ValidSlot("B12"))
	assert.False(t, ValidSlot("a1"))
	assert.False(t, ValidSlot("A123"))
	assert.False(t, ValidSlot("1A"))
	assert.False(t, ValidSlot(""))
}

func TestValidSubjectCode(t *testing.T) {
	assert.True(t, ValidSubjectCode("CS101"))
	assert.True(t, ValidSubjectCode("MATH2"))
	assert.False(t, ValidSubjectCode("cs101"))
	assert.False(t, ValidSubjectCode("C101"))
	assert.False(t, ValidSubjectCode("CS"))
}

func TestValidMarks(t *testing.T) {
	assert.True(t, ValidMarks(0))
	assert.True(t, ValidMarks(100))
	assert.True(t, ValidMarks(59.5))
	assert.False(t, ValidMarks(-0.1))
	assert.False(t, ValidMarks(100.1))
}
