package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(WithKind(KindRevision), WithMetadata("source", "git"))

	assert.Equal(t, KindRevision, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "git", h.Metadata["source"])
}

func TestWithAPIVersion(t *testing.T) {
	h := New(WithAPIVersion("v2"))
	assert.Equal(t, "v2", h.APIVersion)
}

func TestWithMetadataNilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, map[string]string{"k": "v"}, h.Metadata)
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindComparison, APIVersion, "v1.2.3")

	assert.Equal(t, KindComparison, h.Kind)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.NotContains(t, h.Metadata, "stale")

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)

	h.Init(KindRevision, APIVersion, "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindRevision, KindRevisionList, KindComparison, KindDescribe, KindImage} {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("Snapshot").IsValid())
	assert.False(t, Kind("").IsValid())
}
