package publication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFlags(t *testing.T) {
	t.Run("each selectable status sets exactly one flag", func(t *testing.T) {
		for _, status := range SelectableStatuses() {
			flags, err := status.Flags()
			require.NoError(t, err)

			count := 0
			for _, b := range []bool{
				flags.NeedsRecording, flags.NeedsEditing, flags.InEditing,
				flags.InReview, flags.Approved, flags.IsPublished,
			} {
				if b {
					count++
				}
			}
			assert.Equal(t, 1, count, "status %s", status)
		}
	})

	t.Run("round trips through flags", func(t *testing.T) {
		for _, status := range SelectableStatuses() {
			flags, err := status.Flags()
			require.NoError(t, err)
			assert.Equal(t, status, flags.Status())
		}
	})

	t.Run("unspecified maps to zero flags", func(t *testing.T) {
		flags, err := StatusUnspecified.Flags()
		require.NoError(t, err)
		assert.Equal(t, StatusFlags{}, flags)
		assert.Equal(t, StatusUnspecified, flags.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := Status("archived").Flags()
		assert.Error(t, err)
	})
}

func TestStatusFlagsPrecedence(t *testing.T) {
	// The most downstream true flag wins when the row is inconsistent.
	cases := []struct {
		name  string
		flags StatusFlags
		want  Status
	}{
		{"published beats approved", StatusFlags{Approved: true, IsPublished: true}, StatusPublished},
		{"approved beats review", StatusFlags{InReview: true, Approved: true}, StatusApproved},
		{"review beats editing", StatusFlags{InEditing: true, InReview: true}, StatusInReview},
		{"editing beats needs editing", StatusFlags{NeedsEditing: true, InEditing: true}, StatusInEditing},
		{"needs editing beats needs recording", StatusFlags{NeedsRecording: true, NeedsEditing: true}, StatusNeedsEditing},
		{"all flags set", StatusFlags{true, true, true, true, true, true}, StatusPublished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flags.Status())
		})
	}
}

func TestStatusFlagsNormalize(t *testing.T) {
	t.Run("repairs multi-flag rows", func(t *testing.T) {
		dirty := StatusFlags{NeedsRecording: true, Approved: true}
		assert.False(t, dirty.IsConsistent())

		clean := dirty.Normalize()

		assert.True(t, clean.IsConsistent())
		assert.Equal(t, StatusApproved, clean.Status())
		assert.False(t, clean.NeedsRecording)
	})

	t.Run("keeps consistent rows unchanged", func(t *testing.T) {
		flags, _ := StatusInReview.Flags()
		assert.Equal(t, flags, flags.Normalize())
	})

	t.Run("zero flags stay zero", func(t *testing.T) {
		assert.Equal(t, StatusFlags{}, StatusFlags{}.Normalize())
	})
}
