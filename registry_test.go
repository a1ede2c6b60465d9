package lessonkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	lessonkit "github.com/lessonkit/lessonkit"
)

func TestLookup(t *testing.T) {
	d, ok := lessonkit.Lookup("flip")
	require.True(t, ok)
	require.Equal(t, lessonkit.KindFlip, d.Kind)
	require.False(t, d.ObjectKeyed)

	d, ok = lessonkit.Lookup("mcqs")
	require.True(t, ok)
	require.True(t, d.ObjectKeyed)

	_, ok = lessonkit.Lookup("hologram")
	require.False(t, ok)
}

func TestLookup_DepthLimits(t *testing.T) {
	d, _ := lessonkit.Lookup("checklist")
	require.Equal(t, 3, d.MaxDepth)
	d, _ = lessonkit.Lookup("stepFlow")
	require.Equal(t, 5, d.MaxDepth)
	d, _ = lessonkit.Lookup("markdown")
	require.Zero(t, d.MaxDepth)
}

func TestKinds_Complete(t *testing.T) {
	require.Len(t, lessonkit.Kinds(), 17)
}
