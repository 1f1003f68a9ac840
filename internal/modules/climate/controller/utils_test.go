package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	got, err := parseDateParam("start", "2017-08-23")
	require.NoError(t, err)
	assert.Equal(t, "2017-08-23", got)

	_, err = parseDateParam("start", "")
	assert.ErrorContains(t, err, "missing 'start'")

	_, err = parseDateParam("end", "08/23/2017")
	assert.ErrorContains(t, err, "invalid 'end'")

	_, err = parseDateParam("start", "2017-13-40")
	assert.ErrorContains(t, err, "invalid 'start'")
}
