package runtime_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelines.software/component-model/runtime"
)

func TestRawCanonicalizesOnUnmarshal(t *testing.T) {
	var a, b runtime.Raw
	require.NoError(t, json.Unmarshal([]byte(`{"b": 1, "a": 2}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"a": 2, "b": 1}`), &b))

	assert.Equal(t, a.Data, b.Data, "canonical form must be independent of key order")
}

func TestRawRoundTrip(t *testing.T) {
	var raw runtime.Raw
	require.NoError(t, json.Unmarshal([]byte(`{"nodes": ["a", "b"]}`), &raw))
	raw.SetType(runtime.NewUnversionedType("graph"))

	data, err := json.Marshal(&raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": ["a", "b"]}`, string(data))
}

func TestRawDeepCopy(t *testing.T) {
	var raw runtime.Raw
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1}`), &raw))
	raw.SetType(runtime.NewUnversionedType("graph"))

	copied := raw.DeepCopyTyped().(*runtime.Raw)
	assert.Equal(t, raw.Data, copied.Data)
	copied.Data[0] = 'x'
	assert.NotEqual(t, raw.Data, copied.Data)
}

func TestRawRejectsMalformedJSON(t *testing.T) {
	var raw runtime.Raw
	require.Error(t, json.Unmarshal([]byte(`{"a":`), &raw))
}
