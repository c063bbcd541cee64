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
	"fmt"
)

// TypeID is the structural identity of a concrete type.
// Two concrete types with the same TypeID are treated as the same node
// by the supertype traversal's visited set.
type TypeID string

// Type is a type expression: either a single concrete type,
// or a flexible type, i.e. a range of two concrete types
// [lower bound, upper bound], used where the exact representation
// of a type is ambiguous (e.g. platform nullability).
//
// A flexible type's lower bound is always a subtype of its upper bound.
type Type interface {
	fmt.Stringer
	IsFlexible() bool
	// LowerIfFlexible returns the lower bound of a flexible type,
	// and the type itself when it is already concrete
	LowerIfFlexible() ConcreteType
	// UpperIfFlexible returns the upper bound of a flexible type,
	// and the type itself when it is already concrete
	UpperIfFlexible() ConcreteType
}

// ConcreteType is a single (non-range) type:
// a type constructor applied to type arguments, plus a nullability flag.
//
// The specialization queries (error, stub, dynamic, captured, ...) are
// not mutually exclusive in general; the checker dispatches on them
// in a fixed priority order.
type ConcreteType interface {
	Type
	ID() TypeID
	Constructor() TypeConstructor
	IsMarkedNullable() bool
	// Arguments returns the type arguments, in parameter order.
	// Empty for types of parameterless constructors.
	Arguments() []TypeArgument
	IsErrorType() bool
	IsStubType() bool
	IsDynamicType() bool
	IsDefinitelyNonNull() bool
	IsClassType() bool
	IsCapturedType() bool
	// CapturedLowerBound returns the lower bound of a captured type,
	// or nil if the type is not captured or has no defined lower bound
	CapturedLowerBound() Type
}

// TypeConstructor is the identity of a generic shape:
// `List` rather than `List<Int>`.
type TypeConstructor interface {
	fmt.Stringer
	// Equal returns true if the two constructors are the same constructor.
	// This is the structural identity the whole checker is built on.
	Equal(other TypeConstructor) bool
	Parameters() []TypeParameter
	// Supertypes returns the immediate supertypes of the constructor,
	// in declaration order.
	// For an intersection constructor, these are the intersected members.
	Supertypes() []Type
	IsAny() bool
	IsNothing() bool
	IsClass() bool
	IsIntersection() bool
	IsFinal() bool
	IsDenotable() bool
}

// TypeParameter is a declaration-site type parameter of a constructor.
type TypeParameter interface {
	Name() string
	Variance() Variance
}

// TypeArgument is a use-site type argument:
// a type expression plus a use-site variance,
// or a star projection ("compatible with any argument at this position").
type TypeArgument interface {
	IsStarProjection() bool
	// Variance returns the use-site variance.
	// Meaningless for star projections.
	Variance() Variance
	// Type returns the argument type. Nil for star projections.
	Type() Type
}

// TypeSystem is the capability interface the checker consumes:
// the construction operations the surrounding type-representation layer
// must provide. All read-only queries live on the type handles themselves.
type TypeSystem interface {
	// IntersectTypes constructs an intersection of the given types
	IntersectTypes(types []Type) Type
	// CaptureArguments performs capture conversion on the type's
	// projected arguments. Returns nil when capture does not apply,
	// e.g. when no argument is projected.
	CaptureArguments(t ConcreteType) ConcreteType
	// SubstitutionSupertypesPolicy returns the traversal policy which
	// expands the given type's supertypes with its generic arguments
	// substituted for the constructor's parameters
	SubstitutionSupertypesPolicy(t ConcreteType) SupertypesPolicy
}

// Decision is a yes/no/unknown answer.
// The zero value is DecisionUnknown.
type Decision uint8

const (
	DecisionUnknown Decision = iota
	DecisionNo
	DecisionYes
)

func DecisionFromBool(value bool) Decision {
	if value {
		return DecisionYes
	}
	return DecisionNo
}

func (d Decision) String() string {
	switch d {
	case DecisionUnknown:
		return "unknown"
	case DecisionNo:
		return "no"
	case DecisionYes:
		return "yes"
	}
	panic(fmt.Errorf("unknown decision: %d", d))
}
