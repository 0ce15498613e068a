package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	// BLAKE2b-256 of the empty string
	require.Equal(t,
		Prefix+"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Sum(nil))

	a, b := Sum([]byte("anagram")), Sum([]byte("anagran"))
	require.True(t, strings.HasPrefix(a, Prefix))
	require.Len(t, a, len(Prefix)+64)
	require.NotEqual(t, a, b)
	require.Equal(t, a, Sum([]byte("anagram")))
}
