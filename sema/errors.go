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

	"github.com/segno-lang/segno/errors"
)

// The errors in this file are defects in the type checker or in the
// type graph it was given, not results. They abort the current query
// by panicking: silently returning a wrong boolean would make later
// compilation phases accept invalid programs.

// TooManySupertypesError

// TooManySupertypesError is raised when a supertype traversal visits
// more nodes than the hard bound allows.
// A hierarchy this large indicates a modeling bug upstream.
type TooManySupertypesError struct {
	Type    ConcreteType
	Visited []TypeID
}

var _ errors.InternalError = &TooManySupertypesError{}

func (*TooManySupertypesError) IsInternalError() {}

func (e *TooManySupertypesError) Error() string {
	return fmt.Sprintf(
		"too many supertypes reached from type `%s`: visited %d",
		e.Type,
		len(e.Visited),
	)
}

func (e *TooManySupertypesError) SecondaryError() string {
	return fmt.Sprintf("visited types: %v", e.Visited)
}

// ArgumentsDepthLimitError

// ArgumentsDepthLimitError is raised when nested generic-argument
// comparisons recurse deeper than the hard bound allows,
// e.g. for self-referential bounds like `List<List<List<...>>>`.
type ArgumentsDepthLimitError struct {
	Argument Type
	Depth    int
}

var _ errors.InternalError = &ArgumentsDepthLimitError{}

func (*ArgumentsDepthLimitError) IsInternalError() {}

func (e *ArgumentsDepthLimitError) Error() string {
	return fmt.Sprintf(
		"arguments depth is too high while checking type `%s`: %d",
		e.Argument,
		e.Depth,
	)
}

// TraversalInProgressError

// TraversalInProgressError is raised when a supertype traversal begins
// before the previous traversal on the same checker has cleared its
// scratch state. One checker supports one traversal at a time.
type TraversalInProgressError struct{}

var _ errors.InternalError = &TraversalInProgressError{}

func (*TraversalInProgressError) IsInternalError() {}

func (*TraversalInProgressError) Error() string {
	return "supertypes traversal is already in progress"
}

// NullableIntersectionError

// NullableIntersectionError is raised when an intersection type is
// found marked nullable. Intersection types must never be nullable.
type NullableIntersectionError struct {
	Type ConcreteType
}

var _ errors.InternalError = &NullableIntersectionError{}

func (*NullableIntersectionError) IsInternalError() {}

func (e *NullableIntersectionError) Error() string {
	return fmt.Sprintf("intersection type `%s` is marked nullable", e.Type)
}

// UnmergeableDiamondArgumentError

// UnmergeableDiamondArgumentError is raised when diamond resolution
// tries to intersect the candidates' arguments and finds a candidate
// argument that is not an invariant projection.
// Only invariant positions are mergeable.
type UnmergeableDiamondArgumentError struct {
	Candidate      ConcreteType
	ParameterIndex int
	ParameterName  string
}

var _ errors.InternalError = &UnmergeableDiamondArgumentError{}

func (*UnmergeableDiamondArgumentError) IsInternalError() {}

func (e *UnmergeableDiamondArgumentError) Error() string {
	return fmt.Sprintf(
		"cannot merge non-invariant argument for parameter `%s` (#%d) of diamond candidate `%s`",
		e.ParameterName,
		e.ParameterIndex,
		e.Candidate,
	)
}

// NonInvariantArgumentError

// NonInvariantArgumentError is raised when the subtype side of an
// argument-wise comparison holds a projected (or star) argument.
// After capture conversion, subtype-side arguments are always invariant.
type NonInvariantArgumentError struct {
	Argument TypeArgument
	Index    int
}

var _ errors.InternalError = &NonInvariantArgumentError{}

func (*NonInvariantArgumentError) IsInternalError() {}

func (e *NonInvariantArgumentError) Error() string {
	return fmt.Sprintf(
		"incorrect subtype-side argument at position %d: expected an invariant projection",
		e.Index,
	)
}
