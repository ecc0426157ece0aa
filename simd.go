// Copyright 2025 go-jpeg2000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqz

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/vec"
)

// scratchRowPool hands out the single-row []int16 scratch buffers the DWT
// lifting passes need, sized to the widest row of the image being coded.
// Encoding and decoding both run one at a time per call, so a small pool
// amortizes allocation across repeated Encode/Decode calls in a
// long-running process, following the sync.Pool staging pattern used
// throughout the teacher's own image buffer pools.
var scratchRowPool = sync.Pool{
	New: func() any { return new([]int16) },
}

func getScratchRow(width int) []int16 {
	buf := scratchRowPool.Get().(*[]int16)
	if cap(*buf) < width {
		*buf = make([]int16, width)
	}
	return (*buf)[:width]
}

func putScratchRow(row []int16) {
	scratchRowPool.Put(&row)
}

// planeMax finds the largest coefficient in a width x height subband view
// with the given row stride, using vec.BaseMax per row. The subband's rows
// are not contiguous (stride may exceed width once nested inside a
// coarser level's decomposition), so the reduction runs row by row rather
// than over the whole backing slice at once.
func planeMax(data []int16, base, width, height, stride int) int16 {
	max := data[base]
	for y := 0; y < height; y++ {
		row := data[base+y*stride : base+y*stride+width]
		if m := vec.BaseMax(row); m > max {
			max = m
		}
	}
	return max
}
