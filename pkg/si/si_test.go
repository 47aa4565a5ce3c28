package si

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	for _, x := range []struct {
		v        float64
		unit     string
		expected string
	}{
		{5100, "Ω", "5.1 kΩ"},
		{10000, "Ω", "10 kΩ"},
		{1e6, "Ω", "1 MΩ"},
		{2.2e9, "Ω", "2.2 GΩ"},
		{4.7, "Ω", "4.7 Ω"},
		{0.0015, "Ω", "1.5 mΩ"},
		{0.00047, "Ω", "470 µΩ"},
		{220e-9, "F", "220 nF"},
		{12.5e-12, "F", "12.5 pF"},
		{3.3, "V", "3.3 V"},
		{-12, "V", "-12 V"},
		{0, "Ω", "0 Ω"},
		{math.Inf(1), "Ω", "∞ Ω"},
	} {
		assert.Equal(t, x.expected, Format(x.v, x.unit), "%v %s", x.v, x.unit)
	}
}
