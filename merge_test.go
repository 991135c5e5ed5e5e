package conflux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValueOf(t *testing.T, data any) *Value {
	t.Helper()
	v, err := ValueOf(data)
	require.NoError(t, err)
	return v
}

// TestMerge tests recursive map merging semantics
func TestMerge(t *testing.T) {
	t.Run("OtherWinsConflicts", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"a": 1, "b": 1})
		other := mustValueOf(t, map[string]any{"b": 2, "c": 2})

		base.Merge(other)
		assert.JSONEq(t, `{"a":1,"b":2,"c":2}`, string(base.Bytes()))
	})

	t.Run("NestedMapsMergeRecursively", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{
			"logger": map[string]any{"host": "localhost", "port": 514},
		})
		other := mustValueOf(t, map[string]any{
			"logger": map[string]any{"port": 1514, "verbose": true},
		})

		base.Merge(other)
		assert.JSONEq(t, `{"logger":{"host":"localhost","port":1514,"verbose":true}}`, string(base.Bytes()))
	})

	t.Run("ScalarReplacesNestedMap", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"logger": map[string]any{"host": "x"}})
		other := mustValueOf(t, map[string]any{"logger": "disabled"})

		base.Merge(other)
		assert.JSONEq(t, `{"logger":"disabled"}`, string(base.Bytes()))
	})

	t.Run("ArraysReplaceNotConcatenate", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"tags": []string{"a", "b"}})
		other := mustValueOf(t, map[string]any{"tags": []string{"c"}})

		base.Merge(other)
		assert.JSONEq(t, `{"tags":["c"]}`, string(base.Bytes()))
	})

	t.Run("NonMapReceiverBecomesOther", func(t *testing.T) {
		base := mustValueOf(t, "scalar")
		other := mustValueOf(t, map[string]any{"a": 1})

		base.Merge(other)
		assert.JSONEq(t, `{"a":1}`, string(base.Bytes()))
	})

	t.Run("NonMapOtherReplacesReceiver", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"a": 1})
		other := mustValueOf(t, []int{1, 2, 3})

		base.Merge(other)
		assert.JSONEq(t, `[1,2,3]`, string(base.Bytes()))
	})

	t.Run("MergedValuesAreIndependent", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{})
		other := mustValueOf(t, map[string]any{"a": map[string]any{"b": 1}})

		base.Merge(other)
		_, err := other.SetByKeys([]string{"a", "b"}, 2)
		require.NoError(t, err)

		var got int
		found, err := base.GetByKeys(&got, "a", "b")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, got)
	})
}

// TestMergeWithCase tests case policy rewriting during merge
func TestMergeWithCase(t *testing.T) {
	t.Run("InsensitiveMergeLowersBothSides", func(t *testing.T) {
		base, err := ValueOf(map[string]any{"Logger": map[string]any{"Host": "x"}})
		require.NoError(t, err)
		other, err := ValueOf(map[string]any{"LOGGER": map[string]any{"PORT": 514}})
		require.NoError(t, err)

		base.MergeWithCase(other, false)
		assert.False(t, base.IsCaseSensitive())
		assert.JSONEq(t, `{"logger":{"host":"x","port":514}}`, string(base.Bytes()))
	})

	t.Run("SensitiveMergeKeepsDistinctCasings", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"Key": 1})
		other := mustValueOf(t, map[string]any{"key": 2})

		base.MergeWithCase(other, true)
		assert.JSONEq(t, `{"Key":1,"key":2}`, string(base.Bytes()))
	})

	t.Run("SwitchingToSensitiveDoesNotRewrite", func(t *testing.T) {
		base, err := ValueOfWithCase(map[string]any{"KEY": 1}, false)
		require.NoError(t, err)
		other := mustValueOf(t, map[string]any{"Other": 2})

		base.MergeWithCase(other, true)
		assert.True(t, base.IsCaseSensitive())
		// Keys were lowered on insert and stay lowered
		assert.JSONEq(t, `{"key":1,"Other":2}`, string(base.Bytes()))
	})
}

// TestMergeSealInteraction tests that structural merges trip the seal state
func TestMergeSealInteraction(t *testing.T) {
	t.Run("MapMergeMutatesSealedTree", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"a": 1})
		base.Seal("_sealed_")
		require.Equal(t, SealStateSealed, base.SealedState())

		base.Merge(mustValueOf(t, map[string]any{"b": 2}))
		assert.Equal(t, SealStateMutated, base.SealedState())
		assert.Equal(t, "{}", base.String())
	})

	t.Run("WholesaleReplacementKeepsSealState", func(t *testing.T) {
		base := mustValueOf(t, map[string]any{"a": 1})
		base.Seal("_sealed_")

		base.Merge(mustValueOf(t, "scalar"))
		assert.Equal(t, SealStateSealed, base.SealedState())
	})
}
