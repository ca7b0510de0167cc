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

// DefaultHndqCallLimit is the default Hash N-Degree Quads recursion
// budget (spec.md §6).
const DefaultHndqCallLimit = 4000

// CallCounter guards the recursive Hash N-Degree Quads step against
// adversarial inputs that would otherwise provoke super-polynomial
// recursion (spec.md §1, §5, §7). Add is called once per logical HNDQ
// invocation; it fails once the budget is exceeded.
type CallCounter interface {
	Add(identifier string) error
	Sum() int
}

// simpleCallCounter is a single shared counter across the whole
// canonicalize() call, matching spec.md §4.6 step 1 and the default
// "SimpleHndqCallCounter" strategy of the original rdf-canon prototype
// (original_source/src/counter.rs).
type simpleCallCounter struct {
	count int
	limit int
}

// NewCallCounter creates the default, dataset-wide call counter.
func NewCallCounter(limit int) CallCounter {
	if limit <= 0 {
		limit = DefaultHndqCallLimit
	}
	return &simpleCallCounter{limit: limit}
}

func (c *simpleCallCounter) Add(_ string) error {
	c.count++
	if c.count > c.limit {
		return HndqCallLimitExceeded(c.limit)
	}
	return nil
}

func (c *simpleCallCounter) Sum() int { return c.count }

// perNodeCallCounter buds the limit per reference blank-node identifier
// instead of across the whole invocation, restoring the
// "PerNodeHndqCallCounter" strategy present in the original rdf-canon
// prototype (original_source/src/counter.rs) but dropped from spec.md's
// distillation. Selecting it via CanonicalizeOptions.CallCounterFactory
// lets an operator bound the cost any single blank node's neighborhood
// exploration can incur, rather than the dataset as a whole.
type perNodeCallCounter struct {
	counts map[string]int
	limit  int
}

// NewPerNodeCallCounter creates a call counter that tracks the budget
// separately for each reference blank-node identifier passed to Add.
func NewPerNodeCallCounter(limit int) CallCounter {
	if limit <= 0 {
		limit = DefaultHndqCallLimit
	}
	return &perNodeCallCounter{counts: make(map[string]int), limit: limit}
}

func (c *perNodeCallCounter) Add(identifier string) error {
	c.counts[identifier]++
	if c.counts[identifier] > c.limit {
		return HndqCallLimitExceeded(c.limit)
	}
	return nil
}

func (c *perNodeCallCounter) Sum() int {
	sum := 0
	for _, v := range c.counts {
		sum += v
	}
	return sum
}
