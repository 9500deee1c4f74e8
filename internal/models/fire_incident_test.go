package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_PreservesOffset(t *testing.T) {
	parsed, err := ParseTimestamp("containment_datetime", "2020-01-01T10:00:00-07:00")
	require.NoError(t, err)

	_, offset := parsed.Zone()
	assert.Equal(t, -7*3600, offset)
	assert.Equal(t, "2020-01-01T10:00:00-07:00", parsed.Format(TimestampLayout))
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("containment_datetime", "01/01/2020")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "containment_datetime", verr.Field)
	assert.Contains(t, verr.Message, "ISO-8601")
}

func TestNewMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("poo_county")
	assert.Equal(t, "poo_county", err.Field)
	assert.Equal(t, "invalid FireIncident: missing poo_county", err.Error())
}
