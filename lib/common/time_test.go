package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatISO8601(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	d := time.Date(2018, 8, 25, 14, 12, 10, 90758840, loc)

	require.Equal(t, "2018-08-25T14:12:10.090758840+09:00", FormatISO8601(d))
	require.Equal(t, "2018-08-25T05:12:10.090758840Z", FormatISO8601(d.UTC()))
}
