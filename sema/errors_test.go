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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segno-lang/segno/errors"
	"github.com/segno-lang/segno/sema"
	"github.com/segno-lang/segno/test_utils"
	"github.com/segno-lang/segno/typemodel"
)

func TestCheckerErrors(t *testing.T) {
	t.Parallel()

	checkerErrors := []error{
		&sema.TooManySupertypesError{
			Type:    typemodel.IntType,
			Visited: []sema.TypeID{"Int", "Number"},
		},
		&sema.ArgumentsDepthLimitError{
			Argument: typemodel.IntType,
			Depth:    101,
		},
		&sema.TraversalInProgressError{},
		&sema.NullableIntersectionError{
			Type: typemodel.NullableIntType,
		},
		&sema.UnmergeableDiamondArgumentError{
			Candidate:      typemodel.IntType,
			ParameterIndex: 0,
			ParameterName:  "T",
		},
		&sema.NonInvariantArgumentError{
			Argument: typemodel.Out(typemodel.IntType),
			Index:    1,
		},
	}

	for _, err := range checkerErrors {
		test_utils.RequireError(t, err)
		assert.True(t,
			errors.IsInternalError(err),
			"%T should be an internal error", err,
		)
		assert.False(t, errors.IsUserError(err))
	}
}
