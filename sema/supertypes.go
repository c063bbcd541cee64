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

import (
	"github.com/segno-lang/segno/errors"
)

// SupertypesPolicyKind enumerates the closed set of per-node behaviors
// of a supertype traversal.
type SupertypesPolicyKind uint8

const (
	// SupertypesPolicyKindNone stops exploring the node's branch
	SupertypesPolicyKindNone SupertypesPolicyKind = iota
	// SupertypesPolicyKindUpperIfFlexible explores a node's supertypes
	// through their upper bounds
	SupertypesPolicyKindUpperIfFlexible
	// SupertypesPolicyKindLowerIfFlexible explores a node's supertypes
	// through their lower bounds
	SupertypesPolicyKindLowerIfFlexible
	// SupertypesPolicyKindCustomTransform explores a node's supertypes
	// through a custom transform, e.g. generic substitution
	SupertypesPolicyKindCustomTransform
)

// SupertypeTransformFunc maps a supertype about to be explored
// to the concrete type the traversal continues with.
type SupertypeTransformFunc func(supertype Type) ConcreteType

// SupertypesPolicy is the per-node policy of a supertype traversal:
// a tag, optionally carrying a transform.
type SupertypesPolicy struct {
	transform SupertypeTransformFunc
	kind      SupertypesPolicyKind
}

var (
	SupertypesPolicyNone = SupertypesPolicy{
		kind: SupertypesPolicyKindNone,
	}
	SupertypesPolicyUpperIfFlexible = SupertypesPolicy{
		kind: SupertypesPolicyKindUpperIfFlexible,
	}
	SupertypesPolicyLowerIfFlexible = SupertypesPolicy{
		kind: SupertypesPolicyKindLowerIfFlexible,
	}
)

// SupertypesPolicyCustomTransform returns a policy which explores
// supertypes through the given transform.
func SupertypesPolicyCustomTransform(transform SupertypeTransformFunc) SupertypesPolicy {
	return SupertypesPolicy{
		kind:      SupertypesPolicyKindCustomTransform,
		transform: transform,
	}
}

func (policy SupertypesPolicy) Kind() SupertypesPolicyKind {
	return policy.kind
}

// StopsTraversal returns true if the policy stops exploring the branch.
func (policy SupertypesPolicy) StopsTraversal() bool {
	return policy.kind == SupertypesPolicyKindNone
}

// TransformType applies the policy to a supertype about to be explored.
// Must not be called for SupertypesPolicyNone.
func (policy SupertypesPolicy) TransformType(supertype Type) ConcreteType {
	switch policy.kind {
	case SupertypesPolicyKindUpperIfFlexible:
		return supertype.UpperIfFlexible()
	case SupertypesPolicyKindLowerIfFlexible:
		return supertype.LowerIfFlexible()
	case SupertypesPolicyKindCustomTransform:
		return policy.transform(supertype)
	default:
		panic(errors.NewUnreachableError())
	}
}

// SupertypePredicateFunc is the early-exit predicate of a traversal.
type SupertypePredicateFunc func(t ConcreteType) bool

// SupertypesPolicyFunc selects the traversal policy for a visited node.
type SupertypesPolicyFunc func(t ConcreteType) SupertypesPolicy

// AnySupertype reports whether some type reachable from start by
// repeatedly expanding immediate supertypes (transformed per-node by
// policyFor) satisfies the predicate.
//
// The start type is checked directly first, so a self-satisfying start
// never touches the traversal scratch state.
//
// Visiting more than maxVisitedSupertypes nodes is a fatal internal
// error (TooManySupertypesError), not a result.
func (checker *TypeChecker) AnySupertype(
	start ConcreteType,
	predicate SupertypePredicateFunc,
	policyFor SupertypesPolicyFunc,
) bool {
	if predicate(start) {
		return true
	}

	checker.initializeSupertypesTraversal()
	defer checker.clearSupertypesTraversal()

	deque := checker.supertypesDeque
	visited := checker.supertypesSet

	deque.PushFront(start)

	for !deque.IsEmpty() {
		if len(visited) > maxVisitedSupertypes {
			panic(&TooManySupertypesError{
				Type:    start,
				Visited: visitedTypeIDs(visited),
			})
		}

		current, _ := deque.PopFront()

		id := current.ID()
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}

		policy := policyFor(current)
		if policy.StopsTraversal() {
			continue
		}

		for _, supertype := range current.Constructor().Supertypes() {
			transformed := policy.TransformType(supertype)
			if predicate(transformed) {
				return true
			}
			deque.PushBack(transformed)
		}
	}

	return false
}

func visitedTypeIDs(visited map[TypeID]struct{}) []TypeID {
	ids := make([]TypeID, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	return ids
}

// FindCorrespondingSupertypes finds the ancestors of subType whose
// constructor is superConstructor, i.e. the candidates whose arguments
// the target's arguments are compared against.
//
// More than one result is a diamond: the subtype reaches the target
// constructor via multiple inheritance paths.
func (checker *TypeChecker) FindCorrespondingSupertypes(
	subType ConcreteType,
	superConstructor TypeConstructor,
) []ConcreteType {

	if subType.IsClassType() {
		return checker.collectAndFilter(subType, superConstructor)
	}

	if !superConstructor.IsClass() {
		return checker.collectAllSupertypesWithGivenConstructor(subType, superConstructor)
	}

	// The subtype is a non-class shape (e.g. a type variable or an
	// intersection), but the target is a class constructor:
	// collect the subtype's class-type ancestors first,
	// then search each of them.

	var classTypeSupertypes []ConcreteType

	checker.AnySupertype(
		subType,
		func(_ ConcreteType) bool {
			return false
		},
		func(t ConcreteType) SupertypesPolicy {
			if t.IsClassType() {
				classTypeSupertypes = append(classTypeSupertypes, t)
				return SupertypesPolicyNone
			}
			return SupertypesPolicyLowerIfFlexible
		},
	)

	var result []ConcreteType
	for _, classTypeSupertype := range classTypeSupertypes {
		result = append(
			result,
			checker.collectAndFilter(classTypeSupertype, superConstructor)...,
		)
	}
	return result
}

func (checker *TypeChecker) collectAndFilter(
	classType ConcreteType,
	constructor TypeConstructor,
) []ConcreteType {
	return selectOnlyPureSupertypes(
		checker.collectAllSupertypesWithGivenConstructor(classType, constructor),
	)
}

func (checker *TypeChecker) collectAllSupertypesWithGivenConstructor(
	subType ConcreteType,
	constructor TypeConstructor,
) []ConcreteType {

	// Class types only have class supertypes
	if !constructor.IsClass() && subType.IsClassType() {
		return nil
	}

	// A final parameterless constructor cannot be inherited with
	// different arguments: an identity check replaces the walk
	if constructor.IsFinal() && len(constructor.Parameters()) == 0 {
		if subType.Constructor().Equal(constructor) {
			return []ConcreteType{subType}
		}
		return nil
	}

	var result []ConcreteType

	checker.AnySupertype(
		subType,
		func(_ ConcreteType) bool {
			return false
		},
		func(current ConcreteType) SupertypesPolicy {
			switch {
			case current.Constructor().Equal(constructor):
				result = append(result, current)
				return SupertypesPolicyNone

			case len(current.Arguments()) == 0:
				return SupertypesPolicyLowerIfFlexible

			default:
				return checker.typeSystem.SubstitutionSupertypesPolicy(current)
			}
		},
	)

	return result
}

// selectOnlyPureSupertypes applies the pure-path preference:
// when a type reaches the same generic ancestor both via a
// representation-flexible path and via a fully-denotable one,
// the fully-denotable candidates are the more precise ones and win.
// When no candidate is fully non-flexible, all are kept.
func selectOnlyPureSupertypes(supertypes []ConcreteType) []ConcreteType {
	if len(supertypes) < 2 {
		return supertypes
	}

	var pure []ConcreteType
	for _, supertype := range supertypes {
		if hasFlexibleArgument(supertype) {
			continue
		}
		pure = append(pure, supertype)
	}

	if len(pure) > 0 {
		return pure
	}
	return supertypes
}

func hasFlexibleArgument(t ConcreteType) bool {
	for _, argument := range t.Arguments() {
		if argument.IsStarProjection() {
			continue
		}
		if argument.Type().IsFlexible() {
			return true
		}
	}
	return false
}

// hasNothingSupertype detects the bottom type among subType's
// ancestors, refusing to cross class-type boundaries:
// "Nothing is a subtype of anything".
func (checker *TypeChecker) hasNothingSupertype(subType ConcreteType) bool {
	return checker.AnySupertype(
		subType,
		func(t ConcreteType) bool {
			return t.Constructor().IsNothing()
		},
		func(t ConcreteType) SupertypesPolicy {
			if t.IsClassType() {
				return SupertypesPolicyNone
			}
			return SupertypesPolicyLowerIfFlexible
		},
	)
}
