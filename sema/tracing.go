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

	"go.opentelemetry.io/otel/attribute"
)

const (
	tracingSubtypeCheckOperation = "subtype.isSubtypeOf"
	tracingEqualTypesOperation   = "subtype.equalTypes"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports top-level subtype and equality queries
	TracingEnabled bool
}

func prepareTypeComparisonTraceAttrs(subType, superType Type, result bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("subType", subType.String()),
		attribute.String("superType", superType.String()),
		attribute.Bool("result", result),
	}
}

func (tracer Tracer) reportSubtypeCheckTrace(
	subType, superType Type,
	result bool,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingSubtypeCheckOperation,
		duration,
		prepareTypeComparisonTraceAttrs(subType, superType, result),
	)
}

func (tracer Tracer) reportEqualTypesTrace(
	a, b Type,
	result bool,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingEqualTypesOperation,
		duration,
		prepareTypeComparisonTraceAttrs(a, b, result),
	)
}
