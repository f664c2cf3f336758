package config

import (
	"testing"
	"yahtzee/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("using defaults", func(t *testing.T) {
		got, err := Load(nil)

		require.NoError(t, err)
		require.Equal(t, 6, got.NumDieSides)
		require.Equal(t, 5, got.HandSize)
		require.Equal(t, []int{3, 3, 1, 2, 5}, got.Hand)
		require.False(t, got.Roll)
		require.Equal(t, zerolog.InfoLevel, got.Level())
		require.Empty(t, got.ReportDir)
	})

	t.Run("reading the environment", func(t *testing.T) {
		t.Setenv("YAHTZEE_DIE_SIDES", "8")
		t.Setenv("YAHTZEE_HAND", "8,7,7")
		t.Setenv("YAHTZEE_LOG_LEVEL", "debug")
		t.Setenv("YAHTZEE_REPORT_DIR", "out")

		got, err := Load(nil)

		require.NoError(t, err)
		require.Equal(t, 8, got.NumDieSides)
		require.Equal(t, []int{8, 7, 7}, got.Hand)
		require.Equal(t, zerolog.DebugLevel, got.Level())
		require.Equal(t, "out", got.ReportDir)
	})

	t.Run("flags override the environment", func(t *testing.T) {
		t.Setenv("YAHTZEE_DIE_SIDES", "8")

		got, err := Load([]string{"-sides", "4", "-hand", "4, 4,1", "-roll", "-seed", "42", "-hand-size", "3"})

		require.NoError(t, err)
		require.Equal(t, 4, got.NumDieSides)
		require.Equal(t, []int{4, 4, 1}, got.Hand)
		require.True(t, got.Roll)
		require.Equal(t, uint64(42), got.Seed)
		require.Equal(t, game.Rules{NumDieSides: 4, HandSize: 3}, got.Rules())
	})

	t.Run("rejecting a die without sides", func(t *testing.T) {
		_, err := Load([]string{"-sides", "0"})

		require.ErrorIs(t, err, game.ErrInvalidDieSides)
	})

	t.Run("rejecting a face the die cannot show", func(t *testing.T) {
		_, err := Load([]string{"-hand", "1,9"})

		require.ErrorIs(t, err, game.ErrInvalidFace)
	})

	t.Run("ignoring the hand when rolling", func(t *testing.T) {
		_, err := Load([]string{"-hand", "9", "-roll"})

		require.NoError(t, err)
	})

	t.Run("rejecting a rolled hand too large to search", func(t *testing.T) {
		_, err := Load([]string{"-roll", "-hand-size", "25"})

		require.ErrorIs(t, err, ErrHandTooLarge)
	})

	t.Run("accepting the largest rolled hand", func(t *testing.T) {
		got, err := Load([]string{"-roll", "-hand-size", "10"})

		require.NoError(t, err)
		require.Equal(t, 10, got.HandSize)
	})

	t.Run("rejecting a given hand too large to search", func(t *testing.T) {
		_, err := Load([]string{"-hand", "1,1,1,1,1,1,1,1,1,1,1"})

		require.ErrorIs(t, err, ErrHandTooLarge)
	})

	t.Run("rejecting a malformed hand", func(t *testing.T) {
		_, err := Load([]string{"-hand", "1,x"})

		require.Error(t, err)
	})

	t.Run("rejecting an unknown log level", func(t *testing.T) {
		_, err := Load([]string{"-log-level", "loud"})

		require.Error(t, err)
	})

	t.Run("rejecting a malformed environment", func(t *testing.T) {
		t.Setenv("YAHTZEE_DIE_SIDES", "six")

		_, err := Load(nil)

		require.Error(t, err)
	})

	t.Run("accepting an empty hand", func(t *testing.T) {
		got, err := Load([]string{"-hand", ""})

		require.NoError(t, err)
		require.Empty(t, got.Hand)
	})
}
