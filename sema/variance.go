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

// Variance describes how a generic parameter's subtyping relates
// to its argument's subtyping:
// it follows it (out/covariant), reverses it (in/contravariant),
// or requires equality (invariant).
type Variance uint8

const (
	VarianceInvariant Variance = iota
	VarianceOut
	VarianceIn
)

func (v Variance) String() string {
	switch v {
	case VarianceInvariant:
		return "invariant"
	case VarianceOut:
		return "out"
	case VarianceIn:
		return "in"
	}
	panic(errors.NewUnreachableError())
}

// EffectiveVariance combines a declaration-site variance
// with a use-site variance.
//
// An invariant side defers to the other side.
// Equal variances agree.
// Opposite variances (`in` vs `out`) have no effective variance:
// the second result is false, and the caller decides how to treat
// the ambiguity.
func EffectiveVariance(declared, useSite Variance) (Variance, bool) {
	switch {
	case declared == VarianceInvariant:
		return useSite, true
	case useSite == VarianceInvariant:
		return declared, true
	case declared == useSite:
		return declared, true
	default:
		return VarianceInvariant, false
	}
}
