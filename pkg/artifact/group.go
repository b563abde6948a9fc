// Copyright (c) 2026, the modelver authors.
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

package artifact

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Standard subgroup labels of the data group, in pipeline order.
const (
	SubGroupRaw         = "raw"
	SubGroupInterim     = "interim"
	SubGroupTransformed = "transformed"
	SubGroupPredicted   = "predicted"
)

// SubGroup is an ordered collection of artifacts under one label,
// e.g. the "raw" inputs of a training run.
type SubGroup struct {
	Label     string
	Artifacts []Artifact
}

// DisplayName returns the label formatted for table output.
func (sg *SubGroup) DisplayName() string {
	return titleCaser.String(sg.Label)
}

// Add appends an artifact to the subgroup.
func (sg *SubGroup) Add(a Artifact) {
	sg.Artifacts = append(sg.Artifacts, a)
}

// Find returns the artifact with the given label, or nil.
func (sg *SubGroup) Find(label string) Artifact {
	for _, a := range sg.Artifacts {
		if a.Label() == label {
			return a
		}
	}
	return nil
}

// Group is a labeled collection of subgroups, mirroring the on-disk layout
// <version dir>/<group>/<subgroup>/<artifact file>.
type Group struct {
	Label     string
	SubGroups []*SubGroup
}

// NewDataGroup creates the standard "data" group with its pipeline
// subgroups: raw, interim, transformed, predicted.
func NewDataGroup() *Group {
	return &Group{
		Label: "data",
		SubGroups: []*SubGroup{
			{Label: SubGroupRaw},
			{Label: SubGroupInterim},
			{Label: SubGroupTransformed},
			{Label: SubGroupPredicted},
		},
	}
}

// DisplayName returns the label formatted for table output.
func (g *Group) DisplayName() string {
	return titleCaser.String(g.Label)
}

// Sub returns the subgroup with the given label, or an error if the group
// has no such subgroup.
func (g *Group) Sub(label string) (*SubGroup, error) {
	for _, sg := range g.SubGroups {
		if sg.Label == label {
			return sg, nil
		}
	}
	return nil, fmt.Errorf("group %q has no subgroup %q", g.Label, label)
}

// Save persists every artifact in the group. Artifacts are written
// concurrently; the first failure cancels the rest and is returned.
func (g *Group) Save(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	for _, sg := range g.SubGroups {
		for _, a := range sg.Artifacts {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := a.Save(); err != nil {
					return fmt.Errorf("subgroup %q: %w", sg.Label, err)
				}
				return nil
			})
		}
	}

	return eg.Wait()
}

// Len returns the total number of artifacts across all subgroups.
func (g *Group) Len() int {
	n := 0
	for _, sg := range g.SubGroups {
		n += len(sg.Artifacts)
	}
	return n
}
