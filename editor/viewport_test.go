//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	kilo "github.com/timburks/kilo/types"
	"pgregory.net/rapid"
)

func TestViewportScrolls(t *testing.T) {
	size := kilo.Size{Rows: 10, Cols: 20}
	tests := []struct {
		name     string
		offset   kilo.Size
		cursor   kilo.Point
		expected kilo.Size
	}{
		{"cursor visible", kilo.Size{Rows: 5, Cols: 0}, kilo.Point{Row: 7, Col: 3}, kilo.Size{Rows: 5, Cols: 0}},
		{"scroll up", kilo.Size{Rows: 5, Cols: 0}, kilo.Point{Row: 2, Col: 0}, kilo.Size{Rows: 2, Cols: 0}},
		{"scroll down", kilo.Size{Rows: 0, Cols: 0}, kilo.Point{Row: 10, Col: 0}, kilo.Size{Rows: 1, Cols: 0}},
		{"last visible row", kilo.Size{Rows: 0, Cols: 0}, kilo.Point{Row: 9, Col: 0}, kilo.Size{Rows: 0, Cols: 0}},
		{"scroll left", kilo.Size{Rows: 0, Cols: 8}, kilo.Point{Row: 0, Col: 3}, kilo.Size{Rows: 0, Cols: 3}},
		{"scroll right", kilo.Size{Rows: 0, Cols: 0}, kilo.Point{Row: 0, Col: 25}, kilo.Size{Rows: 0, Cols: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Offset: tt.offset}
			v.Recompute(tt.cursor, size)
			require.Equal(t, tt.expected, v.Offset)
		})
	}
}

func TestVisibleSlice(t *testing.T) {
	b := bufferWith("0123456789", "ab", "")
	v := Viewport{Offset: kilo.Size{Rows: 0, Cols: 3}, Size: kilo.Size{Rows: 5, Cols: 4}}
	require.Equal(t, "3456", v.VisibleSlice(b, 0))
	require.Equal(t, "", v.VisibleSlice(b, 1), "line shorter than the column offset renders blank")
	require.Equal(t, "", v.VisibleSlice(b, 2))
	require.Equal(t, "", v.VisibleSlice(b, 3), "rows past the buffer render blank")
}

func TestProperty_ViewportContainsCursor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := Viewport{Offset: kilo.Size{
			Rows: rapid.IntRange(0, 500).Draw(rt, "rowOffset"),
			Cols: rapid.IntRange(0, 500).Draw(rt, "colOffset"),
		}}
		cursor := kilo.Point{
			Row: rapid.IntRange(0, 1000).Draw(rt, "row"),
			Col: rapid.IntRange(0, 1000).Draw(rt, "col"),
		}
		size := kilo.Size{
			Rows: rapid.IntRange(1, 100).Draw(rt, "rows"),
			Cols: rapid.IntRange(1, 200).Draw(rt, "cols"),
		}

		v.Recompute(cursor, size)
		require.LessOrEqual(rt, v.Offset.Rows, cursor.Row)
		require.Less(rt, cursor.Row, v.Offset.Rows+size.Rows)
		require.LessOrEqual(rt, v.Offset.Cols, cursor.Col)
		require.Less(rt, cursor.Col, v.Offset.Cols+size.Cols)

		// recomputing with the same inputs changes nothing
		offset := v.Offset
		v.Recompute(cursor, size)
		require.Equal(rt, offset, v.Offset)
	})
}
