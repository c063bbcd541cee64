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

// isPossibleSubtype is the nullability admissibility check:
// it rejects a comparison early when the subtype can hold null
// but the supertype position cannot.
func (checker *TypeChecker) isPossibleSubtype(subType, superType ConcreteType) bool {

	// The supertype position accepts null
	if superType.IsMarkedNullable() {
		return true
	}

	// The subtype is definitely not null
	if subType.IsDefinitelyNonNull() {
		return true
	}

	// The subtype is not-nullable through its hierarchy
	if checker.HasNotNullSupertype(subType, SupertypesPolicyLowerIfFlexible) {
		return true
	}

	// The subtype may hold null, and the supertype definitely cannot
	if superType.IsDefinitelyNonNull() {
		return false
	}

	// The subtype may hold null, and the supertype's hierarchy proves
	// the supertype cannot
	if checker.HasNotNullSupertype(superType, SupertypesPolicyUpperIfFlexible) {
		return false
	}

	// Neither side's nullability is decided by its hierarchy,
	// e.g. the supertype is a type variable: admissible if the subtype
	// reaches the supertype's constructor without passing through a
	// nullable node.
	//
	// NOTE: for captured supertypes with a lower bound this is an
	// over-approximation. It only admits the general comparison,
	// which decides exactly.
	return checker.HasPathByNotMarkedNullableNodes(subType, superType.Constructor())
}

// HasNotNullSupertype reports whether the type's hierarchy proves it
// not-nullable: some ancestor reached through non-nullable nodes is a
// non-nullable class type or definitely non-null.
func (checker *TypeChecker) HasNotNullSupertype(
	t ConcreteType,
	policy SupertypesPolicy,
) bool {
	return checker.AnySupertype(
		t,
		func(current ConcreteType) bool {
			return (current.IsClassType() && !current.IsMarkedNullable()) ||
				current.IsDefinitelyNonNull()
		},
		func(current ConcreteType) SupertypesPolicy {
			if current.IsMarkedNullable() {
				return SupertypesPolicyNone
			}
			return policy
		},
	)
}

// HasPathByNotMarkedNullableNodes reports whether start reaches the
// end constructor (or the bottom type) through nodes not marked
// nullable.
func (checker *TypeChecker) HasPathByNotMarkedNullableNodes(
	start ConcreteType,
	end TypeConstructor,
) bool {
	return checker.AnySupertype(
		start,
		func(current ConcreteType) bool {
			return current.Constructor().IsNothing() ||
				(!current.IsMarkedNullable() &&
					current.Constructor().Equal(end))
		},
		func(current ConcreteType) SupertypesPolicy {
			if current.IsMarkedNullable() {
				return SupertypesPolicyNone
			}
			return SupertypesPolicyLowerIfFlexible
		},
	)
}
