/*
 * Segno - The statically typed interoperable programming language
 *
 * Copyright Segno Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sema

// DiamondPolicy decides how the checker resolves a type which reaches
// the target constructor via multiple inheritance paths with different
// type arguments.
type DiamondPolicy uint8

const (
	// DiamondPolicyIntersectArguments succeeds if any candidate
	// satisfies the argument comparison, and otherwise merges the
	// candidates' arguments position-wise by intersection and retries
	// the comparison once against the merged list.
	// Only invariant positions are mergeable.
	DiamondPolicyIntersectArguments DiamondPolicy = iota
	// DiamondPolicyCheckAnyOfThem succeeds if any candidate
	// satisfies the argument comparison
	DiamondPolicyCheckAnyOfThem
	// DiamondPolicyTakeFirst checks only the first candidate found
	DiamondPolicyTakeFirst
	// DiamondPolicyForceNotSubtype treats any diamond as not-a-subtype
	DiamondPolicyForceNotSubtype
)

// CapturedLowerBoundPolicy decides how the checker treats a supertype
// which is a captured type with a defined lower bound.
type CapturedLowerBoundPolicy uint8

const (
	// CapturedLowerBoundPolicyCheckSubtypeAndLower checks the subtype
	// against the lower bound first, and falls through to the general
	// comparison on failure
	CapturedLowerBoundPolicyCheckSubtypeAndLower CapturedLowerBoundPolicy = iota
	// CapturedLowerBoundPolicyCheckOnlyLower checks the subtype
	// against the lower bound only
	CapturedLowerBoundPolicyCheckOnlyLower
	// CapturedLowerBoundPolicySkipLower skips the lower-bound check
	CapturedLowerBoundPolicySkipLower
)

// ConstraintRecorderFunc records a subtype constraint for an external
// constraint solver. It is invoked exactly once per comparison,
// with the checker's result when a special case decided it,
// and with DecisionUnknown otherwise. Returning a decision other than
// DecisionUnknown pre-empts the general comparison.
type ConstraintRecorderFunc func(subType, superType Type, result Decision) Decision

// Config contains the type checker configurations.
// It is fixed at construction and immutable for the checker's lifetime.
type Config struct {
	Tracer
	// ConstraintRecorder, if set, is invoked once per subtype comparison
	ConstraintRecorder ConstraintRecorderFunc
	// DiamondPolicy determines how same-constructor multiplicity is resolved
	DiamondPolicy DiamondPolicy
	// CapturedLowerBoundPolicy determines how a captured supertype
	// with a defined lower bound is checked
	CapturedLowerBoundPolicy CapturedLowerBoundPolicy
	// PermissiveErrorTypes determines if error types compare equal
	// to any type. It is also the fallback result when no effective
	// variance exists for an argument position.
	PermissiveErrorTypes bool
}
