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

package typemodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segno-lang/segno/sema"
)

func TestConstructorEqual(t *testing.T) {
	t.Parallel()

	// constructor identity is object identity, not name equality
	a := NewClassConstructor("Same")
	b := NewClassConstructor("Same")

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestSimpleTypeString(t *testing.T) {
	t.Parallel()

	parameter := NewTypeParameter("T", sema.VarianceInvariant)
	boxConstructor := NewClassConstructor("Box", parameter).WithSupertypes(AnyType)

	t.Run("plain", func(t *testing.T) {
		assert.Equal(t, "Int", IntType.String())
		assert.Equal(t, "Int?", NullableIntType.String())
	})

	t.Run("generic", func(t *testing.T) {
		assert.Equal(t,
			"Box<Int>",
			NewSimpleType(boxConstructor, Inv(IntType)).String(),
		)
		assert.Equal(t,
			"Box<out Int>",
			NewSimpleType(boxConstructor, Out(IntType)).String(),
		)
		assert.Equal(t,
			"Box<in Int>",
			NewSimpleType(boxConstructor, In(IntType)).String(),
		)
		assert.Equal(t,
			"Box<*>",
			NewSimpleType(boxConstructor, Star()).String(),
		)
		assert.Equal(t,
			"Box<Int?>?",
			NewSimpleType(boxConstructor, Inv(NullableIntType)).WithNullable().String(),
		)
	})

	t.Run("flexible argument", func(t *testing.T) {
		flexible := NewFlexibleType(IntType, NullableIntType)
		assert.Equal(t,
			"Box<(Int..Int?)>",
			NewSimpleType(boxConstructor, Inv(flexible)).String(),
		)
	})

	t.Run("markers", func(t *testing.T) {
		assert.Equal(t, "error:Int", IntType.AsErrorType().String())
		assert.Equal(t, "stub:Int", IntType.AsStubType().String())
		assert.Equal(t, "Int!!", NullableIntType.AsDefinitelyNonNull().WithNullability(false).String())
	})

	t.Run("self-referential", func(t *testing.T) {
		arguments := make([]sema.TypeArgument, 1)
		selfType := NewSimpleType(boxConstructor, arguments...)
		arguments[0] = Inv(selfType)

		rendered := selfType.String()
		assert.True(t, strings.HasPrefix(rendered, "Box<@"))

		// distinct self-referential objects render distinct IDs
		otherArguments := make([]sema.TypeArgument, 1)
		otherType := NewSimpleType(boxConstructor, otherArguments...)
		otherArguments[0] = Inv(otherType)

		assert.NotEqual(t, selfType.ID(), otherType.ID())
	})
}

func TestSimpleTypeImmutability(t *testing.T) {
	t.Parallel()

	t.Run("nullability copies", func(t *testing.T) {
		nullable := IntType.WithNullable()
		assert.False(t, IntType.IsMarkedNullable())
		assert.True(t, nullable.IsMarkedNullable())
		assert.NotSame(t, IntType, nullable)
	})

	t.Run("unchanged nullability returns the receiver", func(t *testing.T) {
		assert.Same(t, IntType, IntType.WithNullability(false))
		assert.Same(t, NullableIntType, NullableIntType.WithNullability(true))
	})

	t.Run("markers copy", func(t *testing.T) {
		errorType := IntType.AsErrorType()
		assert.False(t, IntType.IsErrorType())
		assert.True(t, errorType.IsErrorType())
	})
}

func TestTypeParameterBound(t *testing.T) {
	t.Parallel()

	t.Run("unbounded", func(t *testing.T) {
		parameter := NewTypeParameter("T", sema.VarianceInvariant)
		assert.Same(t, NullableAnyType, parameter.Bound())
	})

	t.Run("single bound", func(t *testing.T) {
		parameter := NewTypeParameter("T", sema.VarianceInvariant, NumberType)
		assert.Same(t, NumberType, parameter.Bound())
	})

	t.Run("multiple bounds intersect", func(t *testing.T) {
		parameter := NewTypeParameter("T", sema.VarianceInvariant, NumberType, StringType)

		bound := parameter.Bound()
		require.IsType(t, &SimpleType{}, bound)
		assert.True(t, bound.(*SimpleType).Constructor().IsIntersection())
	})

	t.Run("ref climbs to the bound", func(t *testing.T) {
		parameter := NewTypeParameter("T", sema.VarianceInvariant, NumberType)

		supertypes := parameter.Ref().Constructor().Supertypes()
		require.Len(t, supertypes, 1)
		assert.Same(t, NumberType, supertypes[0].(*SimpleType))
	})
}

func TestIntersectTypes(t *testing.T) {
	t.Parallel()

	typeSystem := NewTypeSystem()

	t.Run("members become supertypes", func(t *testing.T) {
		intersection := typeSystem.IntersectTypes([]sema.Type{
			StringType,
			NumberType,
		})

		constructor := intersection.LowerIfFlexible().Constructor()
		assert.True(t, constructor.IsIntersection())
		assert.Equal(t,
			[]sema.Type{StringType, NumberType},
			constructor.Supertypes(),
		)
		assert.Equal(t, "{String & Number}", intersection.String())
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		intersection := typeSystem.IntersectTypes([]sema.Type{
			StringType,
			NewSimpleType(StringConstructor),
			NumberType,
		})

		assert.Len(t, intersection.LowerIfFlexible().Constructor().Supertypes(), 2)
	})

	t.Run("singleton collapses", func(t *testing.T) {
		result := typeSystem.IntersectTypes([]sema.Type{
			StringType,
			StringType,
		})

		assert.Same(t, StringType, result.(*SimpleType))
	})
}

func TestCaptureArguments(t *testing.T) {
	t.Parallel()

	typeSystem := NewTypeSystem()

	parameter := NewTypeParameter("T", sema.VarianceInvariant, NumberType)
	boxConstructor := NewClassConstructor("Box", parameter).WithSupertypes(AnyType)
	box := func(argument sema.TypeArgument) *SimpleType {
		return NewSimpleType(boxConstructor, argument)
	}

	t.Run("no arguments", func(t *testing.T) {
		assert.Nil(t, typeSystem.CaptureArguments(IntType))
	})

	t.Run("no projections", func(t *testing.T) {
		assert.Nil(t, typeSystem.CaptureArguments(box(Inv(IntType))))
	})

	t.Run("star projection", func(t *testing.T) {
		captured := typeSystem.CaptureArguments(box(Star()))
		require.NotNil(t, captured)

		argument := captured.Arguments()[0]
		assert.False(t, argument.IsStarProjection())
		assert.Equal(t, sema.VarianceInvariant, argument.Variance())

		capturedType := argument.Type().(*SimpleType)
		assert.True(t, capturedType.IsCapturedType())
		assert.False(t, capturedType.IsClassType())
		assert.Nil(t, capturedType.CapturedLowerBound())

		// the upper bound is the parameter's declared bound
		supertypes := capturedType.Constructor().Supertypes()
		require.Len(t, supertypes, 1)
		assert.Same(t, NumberType, supertypes[0].(*SimpleType))
	})

	t.Run("out projection", func(t *testing.T) {
		captured := typeSystem.CaptureArguments(box(Out(IntType)))
		require.NotNil(t, captured)

		capturedType := captured.Arguments()[0].Type().(*SimpleType)
		assert.Nil(t, capturedType.CapturedLowerBound())

		supertypes := capturedType.Constructor().Supertypes()
		require.Len(t, supertypes, 1)
		assert.Same(t, IntType, supertypes[0].(*SimpleType))
	})

	t.Run("in projection", func(t *testing.T) {
		captured := typeSystem.CaptureArguments(box(In(IntType)))
		require.NotNil(t, captured)

		capturedType := captured.Arguments()[0].Type().(*SimpleType)
		assert.Same(t, IntType, capturedType.CapturedLowerBound().(*SimpleType))

		// the upper bound falls back to the parameter's bound
		supertypes := capturedType.Constructor().Supertypes()
		require.Len(t, supertypes, 1)
		assert.Same(t, NumberType, supertypes[0].(*SimpleType))
	})

	t.Run("invariant positions are preserved", func(t *testing.T) {
		first := NewTypeParameter("A", sema.VarianceInvariant)
		second := NewTypeParameter("B", sema.VarianceInvariant)
		pairConstructor := NewClassConstructor("Pair", first, second).WithSupertypes(AnyType)

		captured := typeSystem.CaptureArguments(
			NewSimpleType(pairConstructor, Inv(IntType), Out(StringType)),
		)
		require.NotNil(t, captured)

		arguments := captured.Arguments()
		assert.Same(t, IntType, arguments[0].Type().(*SimpleType))
		assert.True(t, arguments[1].Type().(*SimpleType).IsCapturedType())
	})
}

func TestSubstitution(t *testing.T) {
	t.Parallel()

	parameter := NewTypeParameter("E", sema.VarianceInvariant)
	listConstructor := NewClassConstructor("List", parameter).WithSupertypes(AnyType)
	list := func(argument sema.TypeArgument) *SimpleType {
		return NewSimpleType(listConstructor, argument)
	}

	t.Run("instantiation induces the substitution", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))
		assert.Same(t, IntType, s[parameter].(*SimpleType))
	})

	t.Run("star maps to the bound", func(t *testing.T) {
		s := substitutionFor(list(Star()))
		assert.Same(t, NullableAnyType, s[parameter].(*SimpleType))
	})

	t.Run("parameter reference is replaced", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))
		assert.Same(t, IntType, s.apply(parameter.Ref()).(*SimpleType))
	})

	t.Run("nullable reference lifts the replacement", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))

		result := s.apply(parameter.Ref().WithNullable())
		assert.True(t, result.(*SimpleType).IsMarkedNullable())
		assert.True(t, result.(*SimpleType).Constructor().Equal(IntConstructor))
	})

	t.Run("nested arguments are substituted", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))

		nested := list(Inv(list(Inv(parameter.Ref()))))
		result := s.apply(nested).(*SimpleType)

		assert.Equal(t, "List<List<Int>>", result.String())
	})

	t.Run("foreign parameters pass through", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))

		other := NewTypeParameter("X", sema.VarianceInvariant)
		assert.Same(t, other.Ref().Constructor(), s.apply(other.Ref()).(*SimpleType).Constructor())
	})

	t.Run("star arguments pass through", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))

		result := s.apply(list(Star())).(*SimpleType)
		assert.True(t, result.Arguments()[0].IsStarProjection())
	})

	t.Run("flexible types substitute bound-wise", func(t *testing.T) {
		s := substitutionFor(list(Inv(IntType)))

		flexible := NewFlexibleType(
			parameter.Ref(),
			parameter.Ref().WithNullable(),
		)

		result := s.apply(flexible)
		require.True(t, result.IsFlexible())
		assert.Equal(t, "(Int..Int?)", result.String())
	})
}

func TestSubstitutionSupertypesPolicy(t *testing.T) {
	t.Parallel()

	typeSystem := NewTypeSystem()

	parameter := NewTypeParameter("E", sema.VarianceInvariant)
	listConstructor := NewClassConstructor("List", parameter).WithSupertypes(AnyType)

	arrayListParameter := NewTypeParameter("E", sema.VarianceInvariant)
	arrayListConstructor := NewClassConstructor("ArrayList", arrayListParameter).
		WithSupertypes(NewSimpleType(listConstructor, Inv(arrayListParameter.Ref())))

	instantiation := NewSimpleType(arrayListConstructor, Inv(IntType))

	policy := typeSystem.SubstitutionSupertypesPolicy(instantiation)
	require.Equal(t, sema.SupertypesPolicyKindCustomTransform, policy.Kind())

	supertype := arrayListConstructor.Supertypes()[0]
	transformed := policy.TransformType(supertype)

	assert.Equal(t, sema.TypeID("List<Int>"), transformed.ID())
}
