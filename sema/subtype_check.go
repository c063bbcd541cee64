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
	"time"

	"github.com/segno-lang/segno/errors"
)

// IsSubtypeOf reports whether every value of subType can be used
// where superType is expected.
func (checker *TypeChecker) IsSubtypeOf(subType, superType Type) (result bool) {
	if checker.config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			checker.config.reportSubtypeCheckTrace(
				subType,
				superType,
				result,
				time.Since(startTime),
			)
		}()
	}

	return checker.isSubtypeOf(subType, superType)
}

// EqualTypes reports whether the two types denote the same type,
// modulo permitted representational differences.
func (checker *TypeChecker) EqualTypes(a, b Type) (result bool) {
	if checker.config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			checker.config.reportEqualTypesTrace(
				a,
				b,
				result,
				time.Since(startTime),
			)
		}()
	}

	return checker.equalTypes(a, b)
}

func (checker *TypeChecker) isSubtypeOf(subType, superType Type) bool {
	// The subtype side of a comparison is represented by its lower
	// bound, the supertype side by its upper bound: a flexible type
	// is a subtype through its most lenient form and a supertype
	// through its most lenient form.
	subConcrete := subType.LowerIfFlexible()
	superConcrete := superType.UpperIfFlexible()

	decision := checker.checkSubtypeForSpecialCases(subConcrete, superConcrete)
	if decision != DecisionUnknown {
		// The constraint is recorded with the flexible types,
		// so the solver can produce flexible answers
		checker.recordConstraint(subType, superType, decision)
		return decision == DecisionYes
	}

	decision = checker.recordConstraint(subType, superType, DecisionUnknown)
	if decision != DecisionUnknown {
		return decision == DecisionYes
	}

	return checker.isSubtypeOfForSingleClassifier(subConcrete, superConcrete)
}

func (checker *TypeChecker) recordConstraint(
	subType, superType Type,
	result Decision,
) Decision {
	recorder := checker.config.ConstraintRecorder
	if recorder == nil {
		return DecisionUnknown
	}
	return recorder(subType, superType, result)
}

// checkSubtypeForSpecialCases applies the short-circuit rules for
// error types, stub types, captured lower bounds, and intersection
// supertypes, in that order. DecisionUnknown means no special case
// applies and the general comparison decides.
func (checker *TypeChecker) checkSubtypeForSpecialCases(
	subType, superType ConcreteType,
) Decision {

	if subType.IsErrorType() || superType.IsErrorType() {
		if checker.config.PermissiveErrorTypes {
			return DecisionYes
		}
		if subType.IsMarkedNullable() && !superType.IsMarkedNullable() {
			return DecisionNo
		}
		return DecisionFromBool(
			strictEqualConcreteTypes(subType, superType, true),
		)
	}

	if subType.IsStubType() || superType.IsStubType() {
		return DecisionYes
	}

	if superType.IsCapturedType() {
		lowerBound := superType.CapturedLowerBound()
		if lowerBound != nil {
			switch checker.config.CapturedLowerBoundPolicy {
			case CapturedLowerBoundPolicyCheckOnlyLower:
				return DecisionFromBool(checker.isSubtypeOf(subType, lowerBound))

			case CapturedLowerBoundPolicyCheckSubtypeAndLower:
				if checker.isSubtypeOf(subType, lowerBound) {
					return DecisionYes
				}

			case CapturedLowerBoundPolicySkipLower:
				// fall through to the general comparison

			default:
				panic(errors.NewUnreachableError())
			}
		}
	}

	superConstructor := superType.Constructor()
	if superConstructor.IsIntersection() {
		if superType.IsMarkedNullable() {
			panic(&NullableIntersectionError{Type: superType})
		}

		for _, member := range superConstructor.Supertypes() {
			if !checker.isSubtypeOf(subType, member) {
				return DecisionNo
			}
		}
		return DecisionYes
	}

	return DecisionUnknown
}

// isSubtypeOfForSingleClassifier is the general comparison:
// locate the ancestors of subType sharing superType's constructor,
// and compare type arguments under variance.
func (checker *TypeChecker) isSubtypeOfForSingleClassifier(
	subType, superType ConcreteType,
) bool {

	if !checker.isPossibleSubtype(subType, superType) {
		return false
	}

	superConstructor := superType.Constructor()

	if subType.Constructor().Equal(superConstructor) &&
		len(superConstructor.Parameters()) == 0 {

		return true
	}

	if superConstructor.IsAny() {
		return true
	}

	supertypes := checker.FindCorrespondingSupertypes(subType, superConstructor)
	for i, supertype := range supertypes {
		captured := checker.typeSystem.CaptureArguments(supertype)
		if captured != nil {
			supertypes[i] = captured
		}
	}

	switch len(supertypes) {
	case 0:
		return checker.hasNothingSupertype(subType)

	case 1:
		return checker.isSubtypeForSameConstructor(supertypes[0].Arguments(), superType)

	default:
		switch checker.config.DiamondPolicy {
		case DiamondPolicyTakeFirst:
			return checker.isSubtypeForSameConstructor(supertypes[0].Arguments(), superType)

		case DiamondPolicyForceNotSubtype:
			return false

		case DiamondPolicyCheckAnyOfThem,
			DiamondPolicyIntersectArguments:

			for _, supertype := range supertypes {
				if checker.isSubtypeForSameConstructor(supertype.Arguments(), superType) {
					return true
				}
			}

		default:
			panic(errors.NewUnreachableError())
		}

		if checker.config.DiamondPolicy != DiamondPolicyIntersectArguments {
			return false
		}

		merged := checker.intersectDiamondArguments(supertypes)
		return checker.isSubtypeForSameConstructor(merged, superType)
	}
}

// intersectDiamondArguments merges the diamond candidates' argument
// lists position-wise by intersection. Every candidate argument must
// be an invariant projection: merging variant positions is undefined
// and a fatal internal error.
func (checker *TypeChecker) intersectDiamondArguments(
	candidates []ConcreteType,
) []TypeArgument {

	parameters := candidates[0].Constructor().Parameters()
	merged := make([]TypeArgument, len(parameters))

	argumentTypes := make([]Type, len(candidates))

	for index, parameter := range parameters {
		for candidateIndex, candidate := range candidates {
			argument := candidate.Arguments()[index]
			if argument.IsStarProjection() ||
				argument.Variance() != VarianceInvariant {

				panic(&UnmergeableDiamondArgumentError{
					Candidate:      candidate,
					ParameterIndex: index,
					ParameterName:  parameter.Name(),
				})
			}
			argumentTypes[candidateIndex] = argument.Type()
		}

		merged[index] = invariantArgument{
			typ: checker.typeSystem.IntersectTypes(argumentTypes),
		}
	}

	return merged
}

// invariantArgument is the synthetic invariant projection produced by
// diamond argument merging.
type invariantArgument struct {
	typ Type
}

var _ TypeArgument = invariantArgument{}

func (invariantArgument) IsStarProjection() bool {
	return false
}

func (invariantArgument) Variance() Variance {
	return VarianceInvariant
}

func (a invariantArgument) Type() Type {
	return a.typ
}

// isSubtypeForSameConstructor compares the subtype's (captured)
// argument list against the supertype, position by position,
// under the effective variance of each position.
func (checker *TypeChecker) isSubtypeForSameConstructor(
	capturedSubArguments []TypeArgument,
	superType ConcreteType,
) bool {

	superConstructor := superType.Constructor()
	superArguments := superType.Arguments()

	for index, parameter := range superConstructor.Parameters() {
		superArgument := superArguments[index]
		if superArgument.IsStarProjection() {
			continue
		}

		superArgumentType := superArgument.Type()

		subArgument := capturedSubArguments[index]
		if subArgument.IsStarProjection() ||
			subArgument.Variance() != VarianceInvariant {

			panic(&NonInvariantArgumentError{
				Argument: subArgument,
				Index:    index,
			})
		}
		subArgumentType := subArgument.Type()

		variance, ok := EffectiveVariance(parameter.Variance(), superArgument.Variance())
		if !ok {
			// An `in` use-site on an `out` parameter (or vice versa)
			// has no effective variance. The configured fallback decides.
			if checker.config.PermissiveErrorTypes {
				continue
			}
			return false
		}

		checker.enterArgument(subArgumentType)

		var result bool
		switch variance {
		case VarianceInvariant:
			result = checker.equalTypes(subArgumentType, superArgumentType)
		case VarianceOut:
			result = checker.isSubtypeOf(subArgumentType, superArgumentType)
		case VarianceIn:
			result = checker.isSubtypeOf(superArgumentType, subArgumentType)
		default:
			panic(errors.NewUnreachableError())
		}

		checker.leaveArgument()

		if !result {
			return false
		}
	}

	return true
}

func (checker *TypeChecker) equalTypes(a, b Type) bool {
	if a == b {
		return true
	}

	if isCommonDenotableType(a) && isCommonDenotableType(b) {
		lowerA := a.LowerIfFlexible()
		lowerB := b.LowerIfFlexible()

		if lowerA.Constructor().Equal(lowerB.Constructor()) &&
			len(lowerA.Arguments()) == 0 {

			if hasFlexibleNullability(a) || hasFlexibleNullability(b) {
				return true
			}
			return lowerA.IsMarkedNullable() == lowerB.IsMarkedNullable()
		}
	}

	return checker.isSubtypeOf(a, b) &&
		checker.isSubtypeOf(b, a)
}

// isCommonDenotableType reports whether the type qualifies for the
// equality fast path: a denotable, non-dynamic, not
// definitely-non-null type whose flexible bounds (if any) share one
// constructor.
func isCommonDenotableType(t Type) bool {
	lower := t.LowerIfFlexible()

	return lower.Constructor().IsDenotable() &&
		!lower.IsDynamicType() &&
		!lower.IsDefinitelyNonNull() &&
		lower.Constructor().Equal(t.UpperIfFlexible().Constructor())
}

func hasFlexibleNullability(t Type) bool {
	return t.LowerIfFlexible().IsMarkedNullable() !=
		t.UpperIfFlexible().IsMarkedNullable()
}

// StrictEqualTypes reports structural identity of two type
// expressions: no subtyping, no flexible leniency, bound-wise for
// flexible types.
func StrictEqualTypes(a, b Type) bool {
	aFlexible := a.IsFlexible()
	if aFlexible != b.IsFlexible() {
		return false
	}

	if aFlexible {
		return strictEqualConcreteTypes(a.LowerIfFlexible(), b.LowerIfFlexible(), false) &&
			strictEqualConcreteTypes(a.UpperIfFlexible(), b.UpperIfFlexible(), false)
	}

	return strictEqualConcreteTypes(a.LowerIfFlexible(), b.LowerIfFlexible(), false)
}

func strictEqualConcreteTypes(a, b ConcreteType, ignoreNullability bool) bool {
	if !ignoreNullability &&
		a.IsMarkedNullable() != b.IsMarkedNullable() {

		return false
	}

	if !a.Constructor().Equal(b.Constructor()) {
		return false
	}

	aArguments := a.Arguments()
	bArguments := b.Arguments()

	if len(aArguments) != len(bArguments) {
		return false
	}

	for index, aArgument := range aArguments {
		bArgument := bArguments[index]

		aStar := aArgument.IsStarProjection()
		if aStar != bArgument.IsStarProjection() {
			return false
		}
		if aStar {
			continue
		}

		if aArgument.Variance() != bArgument.Variance() {
			return false
		}

		if !StrictEqualTypes(aArgument.Type(), bArgument.Type()) {
			return false
		}
	}

	return true
}
