package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/revision"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		registry   string
		repository string
		revision   string
	}{
		{
			name:       "fully qualified",
			ref:        "ghcr.io/nvidia/revtag:v0.9.8-760-gabcd1234",
			registry:   "ghcr.io",
			repository: "nvidia/revtag",
			revision:   "v0.9.8-760-gabcd1234",
		},
		{
			name:       "docker hub short name",
			ref:        "revtag:v1.2.3",
			registry:   "docker.io",
			repository: "library/revtag",
			revision:   "v1.2.3-0",
		},
		{
			name:       "registry with port",
			ref:        "localhost:5000/team/app:1.0.0-3",
			registry:   "localhost:5000",
			repository: "team/app",
			revision:   "v1.0.0-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, got.Reference)
			assert.Equal(t, tt.registry, got.Registry)
			assert.Equal(t, tt.repository, got.Repository)
			assert.Equal(t, tt.revision, got.Tag.String())
		})
	}
}

func TestParseReferenceErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		code rterrors.ErrorCode
	}{
		{"no tag", "ghcr.io/nvidia/revtag", rterrors.ErrCodeInvalidRequest},
		{"invalid reference", "ghcr.io/NVIDIA/Upper:v1.2.3", rterrors.ErrCodeInvalidRequest},
		{"empty", "", rterrors.ErrCodeInvalidRequest},
		{"tag is not a revision", "ghcr.io/nvidia/revtag:latest", rterrors.ErrCodeMissingField},
		{"tag with bad commit", "ghcr.io/nvidia/revtag:v1.2.3-4-abc", rterrors.ErrCodeMalformedCommitPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference(tt.ref)
			require.Error(t, err)
			assert.Equal(t, tt.code, rterrors.CodeOf(err))
		})
	}
}

func TestLatest(t *testing.T) {
	got, err := Latest([]string{
		"ghcr.io/nvidia/revtag:v0.9.8-760-gabcd1234",
		"ghcr.io/nvidia/revtag:v0.9.9-2",
		"ghcr.io/nvidia/revtag:v0.9.9-2-g1",
		"ghcr.io/nvidia/revtag:v0.9.8",
	})
	require.NoError(t, err)
	assert.Equal(t, "ghcr.io/nvidia/revtag:v0.9.9-2", got.Reference)
	assert.True(t, got.Tag.Equal(revision.New(0, 9, 9, 2)))
}

func TestLatestErrors(t *testing.T) {
	_, err := Latest(nil)
	assert.True(t, rterrors.HasCode(err, rterrors.ErrCodeInvalidRequest))

	_, err = Latest([]string{"ghcr.io/a/app:v1.0.0", "ghcr.io/b/app:v2.0.0"})
	assert.True(t, rterrors.HasCode(err, rterrors.ErrCodeInvalidRequest))

	_, err = Latest([]string{"ghcr.io/a/app:v1.0.0", "ghcr.io/a/app:nightly"})
	assert.True(t, rterrors.HasCode(err, rterrors.ErrCodeMissingField))
}
