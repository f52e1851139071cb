package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModels_IsValidGenre_ShouldAcceptEverySupportedGenre(t *testing.T) {
	for _, genre := range Genres {
		require.True(t, IsValidGenre(genre))
	}
}

func TestModels_IsValidGenre_ShouldRejectUnknownOrMismatchedCaseGenres(t *testing.T) {
	require.False(t, IsValidGenre("Polka"))
	require.False(t, IsValidGenre("rock"))
	require.False(t, IsValidGenre(""))
}
