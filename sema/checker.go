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
	"github.com/segno-lang/segno/common"
)

const (
	// maxVisitedSupertypes bounds the node count of a single supertype
	// traversal. Hierarchies beyond it indicate an upstream modeling bug.
	maxVisitedSupertypes = 1000

	// maxArgumentsDepth bounds the nesting of generic-argument
	// comparisons within a single top-level query
	maxArgumentsDepth = 100
)

// TypeChecker decides the subtype and equality relations over type
// expressions read through a TypeSystem.
//
// A checker carries reusable traversal scratch state and is therefore
// not safe for concurrent use: one checker serves one sequential
// stream of queries. Independent checkers are safe in parallel.
type TypeChecker struct {
	typeSystem TypeSystem
	config     Config

	argumentsDepth int

	// Supertype traversal scratch state,
	// lazily allocated, cleared (not deallocated) after each traversal.
	// supertypesLocked defends against a traversal beginning before the
	// previous one cleared.
	supertypesLocked bool
	supertypesDeque  *common.Deque[ConcreteType]
	supertypesSet    map[TypeID]struct{}
}

// NewTypeChecker returns a checker over the given type system.
// A nil config selects all defaults.
func NewTypeChecker(typeSystem TypeSystem, config *Config) *TypeChecker {
	checker := &TypeChecker{
		typeSystem: typeSystem,
	}
	if config != nil {
		checker.config = *config
	}
	return checker
}

func (checker *TypeChecker) initializeSupertypesTraversal() {
	if checker.supertypesLocked {
		panic(&TraversalInProgressError{})
	}
	checker.supertypesLocked = true

	if checker.supertypesDeque == nil {
		checker.supertypesDeque = &common.Deque[ConcreteType]{}
	}
	if checker.supertypesSet == nil {
		checker.supertypesSet = make(map[TypeID]struct{}, maxVisitedSupertypes/10)
	}
}

func (checker *TypeChecker) clearSupertypesTraversal() {
	checker.supertypesDeque.Clear()
	clear(checker.supertypesSet)
	checker.supertypesLocked = false
}

func (checker *TypeChecker) enterArgument(argument Type) {
	if checker.argumentsDepth > maxArgumentsDepth {
		panic(&ArgumentsDepthLimitError{
			Argument: argument,
			Depth:    checker.argumentsDepth,
		})
	}
	checker.argumentsDepth++
}

func (checker *TypeChecker) leaveArgument() {
	checker.argumentsDepth--
}
