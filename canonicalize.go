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

// CanonicalizeOptions configures a single Canonicalize call. Canonicalize
// replaces every zero-valued field with its default, so the zero value
// behaves like DefaultCanonicalizeOptions (spec.md §6 "Configuration
// options").
type CanonicalizeOptions struct {
	// Digest selects the hash algorithm used throughout the call.
	// Defaults to SHA256.
	Digest DigestAlgorithm

	// HndqCallLimit bounds the number of HashNDegreeQuads invocations.
	// Defaults to DefaultHndqCallLimit (4000).
	HndqCallLimit int

	// CallCounterFactory constructs the CallCounter used to enforce
	// HndqCallLimit. Defaults to NewCallCounter (one shared counter for
	// the whole dataset); set to NewPerNodeCallCounter to bound the
	// budget per reference blank node instead (see counter.go).
	CallCounterFactory func(limit int) CallCounter
}

// DefaultCanonicalizeOptions returns the spec-mandated defaults: SHA-256
// and a 4000-call budget.
func DefaultCanonicalizeOptions() CanonicalizeOptions {
	return CanonicalizeOptions{
		Digest:             SHA256,
		HndqCallLimit:      DefaultHndqCallLimit,
		CallCounterFactory: NewCallCounter,
	}
}

func (o CanonicalizeOptions) normalize() CanonicalizeOptions {
	if o.Digest == "" {
		o.Digest = SHA256
	}
	if o.HndqCallLimit <= 0 {
		o.HndqCallLimit = DefaultHndqCallLimit
	}
	if o.CallCounterFactory == nil {
		o.CallCounterFactory = NewCallCounter
	}
	return o
}

// IdentifierMap is the canonicalize driver's output: every input
// blank-node identifier mapped to its canonical replacement, in
// issuance order (spec.md §6). Use Ordered to recover that order.
type IdentifierMap struct {
	values map[string]string
	order  []string
}

// Get returns the canonical identifier assigned to id, if any.
func (m *IdentifierMap) Get(id string) (string, bool) {
	v, ok := m.values[id]
	return v, ok
}

// Ordered returns (inputID, canonicalID) pairs in canonical numbering
// order — the order canonical identifiers were issued in (spec.md §3
// invariant: "this order IS the canonical numbering").
func (m *IdentifierMap) Ordered() []struct{ InputID, CanonicalID string } {
	out := make([]struct{ InputID, CanonicalID string }, len(m.order))
	for i, id := range m.order {
		out[i] = struct{ InputID, CanonicalID string }{id, m.values[id]}
	}
	return out
}

// Len returns the number of blank nodes mapped.
func (m *IdentifierMap) Len() int {
	return len(m.order)
}

// Canonicalize runs the three-phase RDFC-1.0 algorithm over dataset and
// returns the map from every blank-node identifier appearing in it to
// its canonical c14n<n> replacement (spec.md §4.7, §6).
func Canonicalize(dataset Dataset, opts CanonicalizeOptions) (*IdentifierMap, error) {
	opts = opts.normalize()
	state := NewCanonState(dataset, opts.Digest)
	counter := opts.CallCounterFactory(opts.HndqCallLimit)

	// Phase A: compute H1DQ for every blank node, partitioning them by
	// hash (spec.md §4.7 phase A). Blank nodes are visited in sorted
	// identifier order so that equal HNDQ hashes in phase C are ordered
	// the same way on every run, whatever order the quads came in.
	bnIDs := state.BlankNodeIDs()
	sort.Strings(bnIDs)
	hashToBNs := make(map[string][]string)
	for _, id := range bnIDs {
		hash, err := state.HashFirstDegreeQuads(id)
		if err != nil {
			return nil, err
		}
		hashToBNs[hash] = append(hashToBNs[hash], id)
	}

	sortedHashes := sortedKeys(hashToBNs)

	// Phase B: singleton partitions get canonical identifiers directly,
	// in hash order (spec.md §4.7 phase B).
	pending := make(map[string][]string, len(hashToBNs))
	for _, hash := range sortedHashes {
		ids := hashToBNs[hash]
		if len(ids) == 1 {
			state.canonicalIssuer.Issue(ids[0])
			continue
		}
		pending[hash] = ids
	}

	// Phase C: ambiguous partitions are disambiguated via HNDQ, sorted
	// by the resulting hash, and issued canonical identifiers by
	// replaying each winning issuer's insertion order (spec.md §4.7
	// phase C).
	for _, hash := range sortedHashes {
		ids, ok := pending[hash]
		if !ok {
			continue
		}

		type hndqResult struct {
			hash   string
			issuer *IdentifierIssuer
		}
		var results []hndqResult

		for _, id := range ids {
			if state.canonicalIssuer.HasID(id) {
				continue
			}
			tmp := NewIdentifierIssuer("b")
			tmp.Issue(id)

			resHash, resIssuer, err := state.HashNDegreeQuads(id, tmp, counter)
			if err != nil {
				return nil, err
			}
			results = append(results, hndqResult{resHash, resIssuer})
		}

		sort.SliceStable(results, func(i, j int) bool { return results[i].hash < results[j].hash })

		for _, r := range results {
			for _, existing := range r.issuer.ExistingOrder() {
				state.canonicalIssuer.Issue(existing)
			}
		}
	}

	order := state.canonicalIssuer.ExistingOrder()
	values := make(map[string]string, len(order))
	for _, id := range order {
		v, _ := state.canonicalIssuer.Get(id)
		values[id] = v
	}

	return &IdentifierMap{values: values, order: order}, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
