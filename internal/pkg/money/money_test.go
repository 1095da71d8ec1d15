package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "0,00 €", FormatEUR(0))
	assert.Equal(t, "40,00 €", FormatEUR(40))
	assert.Equal(t, "275,50 €", FormatEUR(275.5))
	assert.Equal(t, "1.234,56 €", FormatEUR(1234.56))
	assert.Equal(t, "1.234.567,00 €", FormatEUR(1234567))
	assert.Equal(t, "-80,00 €", FormatEUR(-80))
}
