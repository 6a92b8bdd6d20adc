package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSurahRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{0, -3, 115, 1000} {
		_, err := FetchSurah(n, "")
		require.Error(t, err, "surah %d", n)
		assert.NotErrorIs(t, err, ErrUpstream, "range errors are caller errors, not upstream ones")
	}
}
