package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type hashable struct {
	Address string
	Count   uint64
}

func TestMakeObjectHash(t *testing.T) {
	a := hashable{Address: "findme", Count: 1}

	h0, err := MakeObjectHash(a)
	require.NoError(t, err)
	require.Equal(t, 32, len(h0))

	// same object, same hash
	require.Equal(t, h0, MustMakeObjectHash(hashable{Address: "findme", Count: 1}))

	// any field changes the hash
	require.NotEqual(t, h0, MustMakeObjectHash(hashable{Address: "findme", Count: 2}))
	require.NotEqual(t, h0, MustMakeObjectHash(hashable{Address: "killme", Count: 1}))
}

func TestMakeObjectHashUnsupportedType(t *testing.T) {
	_, err := MakeObjectHash(map[string]string{"a": "b"})
	require.Error(t, err)
}
