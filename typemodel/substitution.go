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
	"github.com/segno-lang/segno/sema"
)

// substitution maps a constructor's type parameters to the arguments
// of a particular instantiation.
type substitution map[*TypeParameter]sema.Type

// substitutionFor returns the substitution induced by the given
// instantiation, e.g. {T -> Int} for `List<Int>` over `List<T>`.
// A star projection maps the parameter to its bound.
func substitutionFor(t *SimpleType) substitution {
	parameters := t.constructor.parameters
	arguments := t.arguments

	s := make(substitution, len(parameters))
	for i, parameter := range parameters {
		argument := arguments[i]
		if argument.IsStarProjection() {
			s[parameter] = parameter.Bound()
		} else {
			s[parameter] = argument.Type()
		}
	}
	return s
}

func (s substitution) apply(t sema.Type) sema.Type {
	switch t := t.(type) {
	case *FlexibleType:
		return NewFlexibleType(
			s.applySimple(t.lower),
			s.applySimple(t.upper),
		)

	case *SimpleType:
		return s.applyToSimple(t)

	default:
		// a foreign Type implementation cannot contain
		// this constructor's parameters
		return t
	}
}

func (s substitution) applySimple(t *SimpleType) *SimpleType {
	result := s.applyToSimple(t)
	return result.LowerIfFlexible().(*SimpleType)
}

func (s substitution) applyToSimple(t *SimpleType) sema.Type {
	parameter := t.constructor.parameter
	if parameter != nil {
		replacement, ok := s[parameter]
		if !ok {
			return t
		}
		if t.nullable {
			return makeNullable(replacement)
		}
		return replacement
	}

	if len(t.arguments) == 0 && t.capturedLower == nil {
		return t
	}

	copied := *t

	if len(t.arguments) > 0 {
		arguments := make([]sema.TypeArgument, len(t.arguments))
		for i, argument := range t.arguments {
			arguments[i] = s.applyArgument(argument)
		}
		copied.arguments = arguments
	}

	if t.capturedLower != nil {
		copied.capturedLower = s.apply(t.capturedLower)
	}

	return &copied
}

func (s substitution) applyArgument(argument sema.TypeArgument) sema.TypeArgument {
	if argument.IsStarProjection() {
		return argument
	}
	return typeArgument{
		typ:      s.apply(argument.Type()),
		variance: argument.Variance(),
	}
}

// makeNullable lifts a substituted type to nullable, bound-wise for
// flexible types: substituting `T?` with `X` yields `X?`.
func makeNullable(t sema.Type) sema.Type {
	switch t := t.(type) {
	case *FlexibleType:
		return NewFlexibleType(
			t.lower.WithNullable(),
			t.upper.WithNullable(),
		)

	case *SimpleType:
		return t.WithNullable()

	default:
		return t
	}
}
