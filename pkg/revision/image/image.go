// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package image reads revisions from the tags of OCI image references such
// as "ghcr.io/org/app:v1.2.3-4-gabc1234".
package image

import (
	"fmt"

	"github.com/distribution/reference"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/revision"
)

// Result is a parsed image reference whose tag is a revision.
type Result struct {
	// Reference is the input as given.
	Reference string `json:"reference" yaml:"reference"`
	// Registry is the registry host (e.g., "ghcr.io", "docker.io").
	Registry string `json:"registry" yaml:"registry"`
	// Repository is the image path within the registry (e.g., "org/app").
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the revision parsed from the image tag.
	Tag revision.Tag `json:"revision" yaml:"revision"`
}

// Name returns registry/repository.
func (r Result) Name() string {
	return r.Registry + "/" + r.Repository
}

// ParseReference parses an image reference and the revision in its tag.
// References without a tag fail with INVALID_REQUEST; tags that are not
// revisions fail with the revision parse error.
func ParseReference(ref string) (Result, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return Result{}, rterrors.WrapWithContext(rterrors.ErrCodeInvalidRequest,
			"invalid image reference", err, map[string]any{"reference": ref})
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return Result{}, rterrors.NewWithContext(rterrors.ErrCodeInvalidRequest,
			"image reference has no tag", map[string]any{"reference": ref})
	}

	t, err := revision.Parse(tagged.Tag())
	if err != nil {
		return Result{}, fmt.Errorf("image %s: %w", ref, err)
	}

	return Result{
		Reference:  ref,
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        t,
	}, nil
}

// Latest parses refs and returns the one with the highest revision. All refs
// must name the same repository. Ties keep the earliest ref.
func Latest(refs []string) (Result, error) {
	if len(refs) == 0 {
		return Result{}, rterrors.New(rterrors.ErrCodeInvalidRequest, "no image references given")
	}

	var best Result
	for i, ref := range refs {
		r, err := ParseReference(ref)
		if err != nil {
			return Result{}, err
		}
		if i == 0 {
			best = r
			continue
		}
		if r.Name() != best.Name() {
			return Result{}, rterrors.NewWithContext(rterrors.ErrCodeInvalidRequest,
				"image references name different repositories",
				map[string]any{"first": best.Name(), "other": r.Name()})
		}
		if revision.Compare(r.Tag, best.Tag) > 0 {
			best = r
		}
	}
	return best, nil
}
