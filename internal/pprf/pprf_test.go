package pprf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brave-experiments/ppoprf/internal/pprf"
)

func TestEvalIsDeterministicBeforePuncture(t *testing.T) {
	tree := pprf.Setup()

	a, err := tree.Eval(42)
	require.NoError(t, err)

	b, err := tree.Eval(42)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestDistinctTagsYieldDistinctOutputs(t *testing.T) {
	tree := pprf.Setup()

	a, err := tree.Eval(1)
	require.NoError(t, err)

	b, err := tree.Eval(2)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPunctureRemovesOnlyThatTag(t *testing.T) {
	tree := pprf.Setup()

	before1, err := tree.Eval(1)
	require.NoError(t, err)

	before0, err := tree.Eval(0)
	require.NoError(t, err)

	require.NoError(t, tree.Puncture(1))

	_, err = tree.Eval(1)
	var target *pprf.NoPrefixFoundError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, byte(1), target.Tag)

	after0, err := tree.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, before0, after0)

	// sanity: the pre-puncture value at 1 was well defined and distinct
	// from tag 0's value.
	assert.NotEqual(t, before1, before0)
}

func TestPunctureIsIdempotentFailure(t *testing.T) {
	tree := pprf.Setup()

	require.NoError(t, tree.Puncture(5))

	err := tree.Puncture(5)
	var target *pprf.NoPrefixFoundError
	assert.ErrorAs(t, err, &target)
}

func TestPunctureEveryTagLeavesDomainEmpty(t *testing.T) {
	tree := pprf.Setup()

	for x := 0; x < pprf.Domain; x++ {
		require.NoError(t, tree.Puncture(byte(x)))
	}

	for x := 0; x < pprf.Domain; x++ {
		_, err := tree.Eval(byte(x))
		assert.Error(t, err)
	}
}
