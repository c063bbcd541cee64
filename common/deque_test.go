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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]

		assert.True(t, d.IsEmpty())
		assert.Equal(t, 0, d.Len())

		_, ok := d.PopFront()
		assert.False(t, ok)

		_, ok = d.PopBack()
		assert.False(t, ok)
	})

	t.Run("queue order", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]

		for i := 1; i <= 5; i++ {
			d.PushBack(i)
		}

		require.Equal(t, 5, d.Len())

		for i := 1; i <= 5; i++ {
			element, ok := d.PopFront()
			require.True(t, ok)
			assert.Equal(t, i, element)
		}

		assert.True(t, d.IsEmpty())
	})

	t.Run("stack order", func(t *testing.T) {
		t.Parallel()

		var d Deque[string]

		d.PushFront("a")
		d.PushFront("b")
		d.PushFront("c")

		element, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, "c", element)

		element, ok = d.PopBack()
		require.True(t, ok)
		assert.Equal(t, "a", element)

		element, ok = d.PopFront()
		require.True(t, ok)
		assert.Equal(t, "b", element)

		assert.True(t, d.IsEmpty())
	})

	t.Run("growth preserves order across wrap-around", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]

		// force the head away from index 0, then grow
		for i := 0; i < minDequeCapacity; i++ {
			d.PushBack(i)
		}
		for i := 0; i < minDequeCapacity/2; i++ {
			_, ok := d.PopFront()
			require.True(t, ok)
		}
		for i := minDequeCapacity; i < minDequeCapacity*3; i++ {
			d.PushBack(i)
		}

		expected := minDequeCapacity / 2
		for !d.IsEmpty() {
			element, ok := d.PopFront()
			require.True(t, ok)
			require.Equal(t, expected, element)
			expected++
		}
		assert.Equal(t, minDequeCapacity*3, expected)
	})

	t.Run("clear keeps buffer, resets contents", func(t *testing.T) {
		t.Parallel()

		var d Deque[int]

		for i := 0; i < 100; i++ {
			d.PushBack(i)
		}
		capacityBefore := len(d.buf)

		d.Clear()

		assert.True(t, d.IsEmpty())
		assert.Equal(t, capacityBefore, len(d.buf))

		// reusable after clear
		d.PushBack(42)
		element, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, 42, element)
	})
}
