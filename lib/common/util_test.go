package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetENVValue(t *testing.T) {
	key := "VOTEBANK_UNITTEST_ENV"
	os.Unsetenv(key)
	require.Equal(t, "default", GetENVValue(key, "default"))

	os.Setenv(key, "")
	defer os.Unsetenv(key)
	require.Equal(t, "", GetENVValue(key, "default"))
}

func TestInStringArray(t *testing.T) {
	a := []string{"gm", "gn"}

	index, found := InStringArray(a, "gn")
	require.True(t, found)
	require.Equal(t, 1, index)

	index, found = InStringArray(a, "gx")
	require.False(t, found)
	require.Equal(t, -1, index)
}

func TestGetUniqueIDFromUUIDIsUnique(t *testing.T) {
	ids := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		ids[GetUniqueIDFromUUID()] = struct{}{}
	}
	require.Equal(t, 100, len(ids))
}
