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

// Package typemodel is the reference in-memory implementation of the
// type capability interfaces consumed by the sema type checker.
// It backs the checker's tests and serves as implementation guidance
// for embedders with their own type representation.
package typemodel

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/segno-lang/segno/sema"
)

//go:generate go run ./gen -rules gen/builtins.yaml -out builtins.gen.go

// TypeParameter

// TypeParameter is a declaration-site type parameter.
// A parameter doubles as a type: Ref returns the type referring to it.
type TypeParameter struct {
	name     string
	variance sema.Variance
	// bounds are the parameter's upper bounds.
	// An unbounded parameter may hold null.
	bounds []sema.Type

	refConstructor *Constructor
}

var _ sema.TypeParameter = &TypeParameter{}

func NewTypeParameter(
	name string,
	variance sema.Variance,
	bounds ...sema.Type,
) *TypeParameter {
	parameter := &TypeParameter{
		name:     name,
		variance: variance,
		bounds:   bounds,
	}
	parameter.refConstructor = &Constructor{
		name:      name,
		denotable: true,
		parameter: parameter,
	}
	return parameter
}

func (p *TypeParameter) Name() string {
	return p.name
}

func (p *TypeParameter) Variance() sema.Variance {
	return p.variance
}

// Bound returns the parameter's effective upper bound:
// the declared bound, the intersection of the declared bounds,
// or nullable Any for an unbounded parameter.
func (p *TypeParameter) Bound() sema.Type {
	switch len(p.bounds) {
	case 0:
		return NullableAnyType
	case 1:
		return p.bounds[0]
	default:
		return NewTypeSystem().IntersectTypes(p.bounds)
	}
}

// Ref returns the type referring to the parameter,
// e.g. the use of `T` in the body of `List<T>`.
func (p *TypeParameter) Ref() *SimpleType {
	return NewSimpleType(p.refConstructor)
}

// Constructor

// Constructor is a type constructor: the identity of a generic shape.
// Two constructors are the same type constructor only if they are the
// same object.
type Constructor struct {
	name       string
	parameters []*TypeParameter
	supertypes []sema.Type

	// parameter is set for the hidden constructor backing a
	// type-parameter reference
	parameter *TypeParameter

	any          bool
	nothing      bool
	class        bool
	intersection bool
	final        bool
	denotable    bool
}

var _ sema.TypeConstructor = &Constructor{}

// ConstructorConfig describes a constructor to create.
// Supertypes are attached afterwards with WithSupertypes,
// so mutually recursive hierarchies can be modeled.
type ConstructorConfig struct {
	Name         string
	Parameters   []*TypeParameter
	Any          bool
	Nothing      bool
	Class        bool
	Intersection bool
	Final        bool
	Denotable    bool
}

func NewConstructor(config ConstructorConfig) *Constructor {
	return &Constructor{
		name:         config.Name,
		parameters:   config.Parameters,
		any:          config.Any,
		nothing:      config.Nothing,
		class:        config.Class,
		intersection: config.Intersection,
		final:        config.Final,
		denotable:    config.Denotable,
	}
}

// NewClassConstructor returns a denotable class constructor,
// the common case.
func NewClassConstructor(name string, parameters ...*TypeParameter) *Constructor {
	return NewConstructor(ConstructorConfig{
		Name:       name,
		Parameters: parameters,
		Class:      true,
		Denotable:  true,
	})
}

// WithSupertypes sets the constructor's immediate supertypes
// and returns the constructor.
func (c *Constructor) WithSupertypes(supertypes ...sema.Type) *Constructor {
	c.supertypes = supertypes
	return c
}

// WithFinal marks the constructor final and returns it.
func (c *Constructor) WithFinal() *Constructor {
	c.final = true
	return c
}

func (c *Constructor) String() string {
	return c.name
}

func (c *Constructor) Equal(other sema.TypeConstructor) bool {
	otherConstructor, ok := other.(*Constructor)
	return ok && otherConstructor == c
}

func (c *Constructor) Parameters() []sema.TypeParameter {
	parameters := make([]sema.TypeParameter, len(c.parameters))
	for i, parameter := range c.parameters {
		parameters[i] = parameter
	}
	return parameters
}

func (c *Constructor) Supertypes() []sema.Type {
	if c.parameter != nil && c.supertypes == nil {
		// A type-parameter reference climbs to the parameter's bound
		return []sema.Type{c.parameter.Bound()}
	}
	return c.supertypes
}

func (c *Constructor) IsAny() bool          { return c.any }
func (c *Constructor) IsNothing() bool      { return c.nothing }
func (c *Constructor) IsClass() bool        { return c.class }
func (c *Constructor) IsIntersection() bool { return c.intersection }
func (c *Constructor) IsFinal() bool        { return c.final }
func (c *Constructor) IsDenotable() bool    { return c.denotable }

// SimpleType

// SimpleType is a concrete (non-flexible) type:
// a constructor applied to arguments, plus a nullability flag
// and optional specialization markers.
//
// SimpleType values are immutable: the With*/As* methods return copies.
type SimpleType struct {
	constructor *Constructor
	arguments   []sema.TypeArgument

	// capturedLower is the lower bound of a captured type, if defined
	capturedLower sema.Type

	nullable          bool
	errorType         bool
	stub              bool
	dynamic           bool
	definitelyNonNull bool
	captured          bool
}

var _ sema.ConcreteType = &SimpleType{}

func NewSimpleType(constructor *Constructor, arguments ...sema.TypeArgument) *SimpleType {
	return &SimpleType{
		constructor: constructor,
		arguments:   arguments,
	}
}

func (t *SimpleType) WithNullability(nullable bool) *SimpleType {
	if t.nullable == nullable {
		return t
	}
	copied := *t
	copied.nullable = nullable
	return &copied
}

func (t *SimpleType) WithNullable() *SimpleType {
	return t.WithNullability(true)
}

func (t *SimpleType) AsErrorType() *SimpleType {
	copied := *t
	copied.errorType = true
	return &copied
}

func (t *SimpleType) AsStubType() *SimpleType {
	copied := *t
	copied.stub = true
	return &copied
}

func (t *SimpleType) AsDynamicType() *SimpleType {
	copied := *t
	copied.dynamic = true
	return &copied
}

func (t *SimpleType) AsDefinitelyNonNull() *SimpleType {
	copied := *t
	copied.definitelyNonNull = true
	return &copied
}

func (t *SimpleType) String() string {
	return t.string(nil)
}

// string renders the type structurally. Self-referential types
// (a type appearing in its own arguments) are rendered by object
// identity at the point of the cycle, keeping the result finite
// and distinct per object.
func (t *SimpleType) string(visiting map[*SimpleType]struct{}) string {
	if _, ok := visiting[t]; ok {
		return fmt.Sprintf("@%p", t)
	}
	if visiting == nil {
		visiting = map[*SimpleType]struct{}{}
	}
	visiting[t] = struct{}{}
	defer delete(visiting, t)

	var builder strings.Builder

	if t.errorType {
		builder.WriteString("error:")
	}
	if t.stub {
		builder.WriteString("stub:")
	}
	if t.captured {
		builder.WriteString("captured:")
	}

	builder.WriteString(t.constructor.name)

	if len(t.arguments) > 0 {
		builder.WriteByte('<')
		for i, argument := range t.arguments {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(argumentString(argument, visiting))
		}
		builder.WriteByte('>')
	}

	if t.capturedLower != nil {
		builder.WriteString("(lower=")
		builder.WriteString(typeString(t.capturedLower, visiting))
		builder.WriteByte(')')
	}

	if t.nullable {
		builder.WriteByte('?')
	}
	if t.definitelyNonNull {
		builder.WriteString("!!")
	}

	return builder.String()
}

func typeString(t sema.Type, visiting map[*SimpleType]struct{}) string {
	switch t := t.(type) {
	case *SimpleType:
		return t.string(visiting)
	case *FlexibleType:
		return "(" + t.lower.string(visiting) + ".." + t.upper.string(visiting) + ")"
	default:
		return t.String()
	}
}

func argumentString(argument sema.TypeArgument, visiting map[*SimpleType]struct{}) string {
	if argument.IsStarProjection() {
		return "*"
	}
	switch argument.Variance() {
	case sema.VarianceOut:
		return "out " + typeString(argument.Type(), visiting)
	case sema.VarianceIn:
		return "in " + typeString(argument.Type(), visiting)
	default:
		return typeString(argument.Type(), visiting)
	}
}

func (t *SimpleType) ID() sema.TypeID {
	return sema.TypeID(t.String())
}

func (t *SimpleType) IsFlexible() bool {
	return false
}

func (t *SimpleType) LowerIfFlexible() sema.ConcreteType {
	return t
}

func (t *SimpleType) UpperIfFlexible() sema.ConcreteType {
	return t
}

func (t *SimpleType) Constructor() sema.TypeConstructor {
	return t.constructor
}

func (t *SimpleType) IsMarkedNullable() bool {
	return t.nullable
}

func (t *SimpleType) Arguments() []sema.TypeArgument {
	return t.arguments
}

func (t *SimpleType) IsErrorType() bool {
	return t.errorType
}

func (t *SimpleType) IsStubType() bool {
	return t.stub
}

func (t *SimpleType) IsDynamicType() bool {
	return t.dynamic
}

func (t *SimpleType) IsDefinitelyNonNull() bool {
	return t.definitelyNonNull
}

func (t *SimpleType) IsClassType() bool {
	return t.constructor.class && !t.captured
}

func (t *SimpleType) IsCapturedType() bool {
	return t.captured
}

func (t *SimpleType) CapturedLowerBound() sema.Type {
	return t.capturedLower
}

// FlexibleType

// FlexibleType is a range of two concrete types [lower, upper],
// used where the exact representation of a type is ambiguous.
// The lower bound must be a subtype of the upper bound.
type FlexibleType struct {
	lower *SimpleType
	upper *SimpleType
}

var _ sema.Type = &FlexibleType{}

func NewFlexibleType(lower, upper *SimpleType) *FlexibleType {
	return &FlexibleType{
		lower: lower,
		upper: upper,
	}
}

func (t *FlexibleType) String() string {
	return "(" + t.lower.String() + ".." + t.upper.String() + ")"
}

func (t *FlexibleType) IsFlexible() bool {
	return true
}

func (t *FlexibleType) LowerIfFlexible() sema.ConcreteType {
	return t.lower
}

func (t *FlexibleType) UpperIfFlexible() sema.ConcreteType {
	return t.upper
}

// Type arguments

type typeArgument struct {
	typ      sema.Type
	variance sema.Variance
	star     bool
}

var _ sema.TypeArgument = typeArgument{}

func (a typeArgument) IsStarProjection() bool {
	return a.star
}

func (a typeArgument) Variance() sema.Variance {
	return a.variance
}

func (a typeArgument) Type() sema.Type {
	return a.typ
}

// Inv returns an invariant use-site argument.
func Inv(t sema.Type) sema.TypeArgument {
	return typeArgument{typ: t, variance: sema.VarianceInvariant}
}

// Out returns a covariant (out-projected) use-site argument.
func Out(t sema.Type) sema.TypeArgument {
	return typeArgument{typ: t, variance: sema.VarianceOut}
}

// In returns a contravariant (in-projected) use-site argument.
func In(t sema.Type) sema.TypeArgument {
	return typeArgument{typ: t, variance: sema.VarianceIn}
}

// Star returns a star projection.
func Star() sema.TypeArgument {
	return typeArgument{star: true}
}

// TypeSystem

// TypeSystem implements the construction capabilities the checker
// consumes: intersection, capture conversion, and generic-supertype
// substitution.
type TypeSystem struct{}

var _ sema.TypeSystem = TypeSystem{}

func NewTypeSystem() TypeSystem {
	return TypeSystem{}
}

func (TypeSystem) IntersectTypes(types []sema.Type) sema.Type {
	seen := set.New[string](len(types))
	var members []sema.Type
	for _, t := range types {
		if !seen.Insert(t.String()) {
			continue
		}
		members = append(members, t)
	}

	if len(members) == 1 {
		return members[0]
	}

	names := make([]string, len(members))
	for i, member := range members {
		names[i] = member.String()
	}

	constructor := NewConstructor(ConstructorConfig{
		Name:         "{" + strings.Join(names, " & ") + "}",
		Intersection: true,
	})
	constructor.WithSupertypes(members...)

	return NewSimpleType(constructor)
}

func (TypeSystem) CaptureArguments(t sema.ConcreteType) sema.ConcreteType {
	simple, ok := t.(*SimpleType)
	if !ok || len(simple.arguments) == 0 {
		return nil
	}

	projected := false
	for _, argument := range simple.arguments {
		if argument.IsStarProjection() ||
			argument.Variance() != sema.VarianceInvariant {

			projected = true
			break
		}
	}
	if !projected {
		return nil
	}

	captured := make([]sema.TypeArgument, len(simple.arguments))
	for i, argument := range simple.arguments {
		captured[i] = captureArgument(simple.constructor.parameters[i], argument)
	}

	copied := *simple
	copied.arguments = captured
	return &copied
}

// captureArgument converts a projected argument into an invariant
// argument over a fresh captured type carrying the projection's bounds.
func captureArgument(
	parameter *TypeParameter,
	argument sema.TypeArgument,
) sema.TypeArgument {

	var upper, lower sema.Type

	switch {
	case argument.IsStarProjection():
		upper = parameter.Bound()

	case argument.Variance() == sema.VarianceOut:
		upper = argument.Type()

	case argument.Variance() == sema.VarianceIn:
		upper = parameter.Bound()
		lower = argument.Type()

	default:
		return argument
	}

	constructor := NewConstructor(ConstructorConfig{
		Name: "captured " + argumentString(argument, nil),
	})
	constructor.WithSupertypes(upper)

	return Inv(&SimpleType{
		constructor:   constructor,
		captured:      true,
		capturedLower: lower,
	})
}

func (TypeSystem) SubstitutionSupertypesPolicy(t sema.ConcreteType) sema.SupertypesPolicy {
	simple := t.(*SimpleType)
	substitution := substitutionFor(simple)

	return sema.SupertypesPolicyCustomTransform(
		func(supertype sema.Type) sema.ConcreteType {
			substituted := substitution.apply(supertype.LowerIfFlexible())
			return substituted.LowerIfFlexible()
		},
	)
}
