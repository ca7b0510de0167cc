// Copyright 2015-2017 Piprate Limited
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

package rdfc10

import "sort"

// permutator enumerates every permutation of a string list via the
// Steinhaus-Johnson-Trotter algorithm, starting from the sorted list.
// The permutation order itself is immaterial to correctness (spec.md
// §4.6 "Tie-breaking and ordering") — HNDQ selects the unique
// lexicographic minimum regardless of visitation order — so any
// complete enumeration works. Each step scans the working slice in
// O(n) and returns a freshly allocated copy of it.
type permutator struct {
	list []string
	left map[string]bool
	done bool
}

func newPermutator(list []string) *permutator {
	sorted := make([]string, len(list))
	copy(sorted, list)
	sort.Strings(sorted)

	left := make(map[string]bool, len(sorted))
	for _, v := range sorted {
		left[v] = true
	}

	return &permutator{list: sorted, left: left}
}

func (p *permutator) hasNext() bool {
	return !p.done
}

func (p *permutator) next() []string {
	result := make([]string, len(p.list))
	copy(result, p.list)

	// locate the largest mobile element: one pointing at a smaller
	// neighbor in the direction of its arrow.
	k := ""
	pos := -1
	n := len(p.list)
	for i := 0; i < n; i++ {
		el := p.list[i]
		movingLeft := p.left[el]
		mobile := (movingLeft && i > 0 && el > p.list[i-1]) ||
			(!movingLeft && i < n-1 && el > p.list[i+1])
		if mobile && (k == "" || el > k) {
			k = el
			pos = i
		}
	}

	if k == "" {
		p.done = true
		return result
	}

	var swapWith int
	if p.left[k] {
		swapWith = pos - 1
	} else {
		swapWith = pos + 1
	}
	p.list[pos], p.list[swapWith] = p.list[swapWith], p.list[pos]

	for i := 0; i < n; i++ {
		if p.list[i] > k {
			p.left[p.list[i]] = !p.left[p.list[i]]
		}
	}

	return result
}
