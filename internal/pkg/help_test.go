package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "5.1", FormatFloat(5.0999999999999996, 3))
	assert.Equal(t, "10", FormatFloat(10, 3))
	assert.Equal(t, "0.0333", FormatFloat(1.0/30, 4))
	assert.Equal(t, "3", FormatFloat(3.0000001, 3))
	assert.Equal(t, "-12", FormatFloat(-12, 2))
	assert.Equal(t, "0", FormatFloat(0, 3))
}
