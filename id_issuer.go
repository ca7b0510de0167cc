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

import "fmt"

// IdentifierIssuer assigns deterministic short identifiers of the form
// "<prefix><n>", n starting at 0 and incrementing monotonically. The
// same input presented twice gets back the identifier it was first
// assigned (spec.md §4.1).
type IdentifierIssuer struct {
	prefix        string
	counter       int
	existing      map[string]string
	existingOrder []string
}

// NewIdentifierIssuer creates an issuer that mints identifiers with the
// given prefix.
func NewIdentifierIssuer(prefix string) *IdentifierIssuer {
	return &IdentifierIssuer{
		prefix:   prefix,
		existing: make(map[string]string),
	}
}

// Clone deep-copies the issuer's state. Used by Hash N-Degree Quads to
// explore speculative permutations without mutating the caller's issuer
// (spec.md §3 "Ownership").
func (ii *IdentifierIssuer) Clone() *IdentifierIssuer {
	clone := &IdentifierIssuer{
		prefix:        ii.prefix,
		counter:       ii.counter,
		existing:      make(map[string]string, len(ii.existing)),
		existingOrder: make([]string, len(ii.existingOrder)),
	}
	copy(clone.existingOrder, ii.existingOrder)
	for k, v := range ii.existing {
		clone.existing[k] = v
	}
	return clone
}

// Issue returns the identifier issued for inputID, minting and recording
// a fresh one on first sight.
func (ii *IdentifierIssuer) Issue(inputID string) string {
	if id, ok := ii.existing[inputID]; ok {
		return id
	}
	id := fmt.Sprintf("%s%d", ii.prefix, ii.counter)
	ii.counter++
	ii.existing[inputID] = id
	ii.existingOrder = append(ii.existingOrder, inputID)
	return id
}

// HasID reports whether inputID has already been issued an identifier.
func (ii *IdentifierIssuer) HasID(inputID string) bool {
	_, ok := ii.existing[inputID]
	return ok
}

// Get returns the issued identifier for inputID without minting one,
// and false if inputID has not been seen yet.
func (ii *IdentifierIssuer) Get(inputID string) (string, bool) {
	id, ok := ii.existing[inputID]
	return id, ok
}

// ExistingOrder returns the input identifiers in the order Issue first
// minted an identifier for them — the canonical numbering order
// (spec.md §3 "Invariants").
func (ii *IdentifierIssuer) ExistingOrder() []string {
	return ii.existingOrder
}

// Len returns the number of identifiers issued so far.
func (ii *IdentifierIssuer) Len() int {
	return len(ii.existingOrder)
}
