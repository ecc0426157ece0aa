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

// The reversible 5/3 integer lifting transform below is the technique used
// by the Snow codec in FFmpeg (Michael Niedermayer): the vertical pass
// walks a sliding three-row window (nnn/nn/n/r) so that each row's
// low-pass and high-pass contributions accumulate in place, and each
// successive DWT level doubles the row stride instead of physically
// compacting the previous level's low-pass rows.

func mirrorRow(i, maximum int) int {
	return int(mirror(int32(i), int32(maximum)))
}

// dwt53HorizontalForward de-interleaves the row of length width starting at
// data[base:] into a low-pass half (written back at data[base:]) and a
// high-pass half (written at data[base+(width+1)/2:]), using scratch as a
// same-length staging area for the de-interleaved even/odd samples.
func dwt53HorizontalForward(data []int16, base int, scratch []int16, width int) {
	if width < 4 {
		return
	}
	halfW := width >> 1
	strideH := halfW
	oddW := width&1 != 0
	if oddW {
		strideH++
	}
	evens := scratch
	odds := scratch[strideH:]
	for i := 0; i < halfW; i++ {
		evens[i] = data[base+2*i]
		odds[i] = data[base+2*i+1]
	}
	if oddW {
		evens[halfW] = data[base+2*halfW]
	}
	w := halfW - 1
	cf0 := int32(evens[0])
	cf2 := int32(evens[1])
	cf1 := int32(odds[0]) + ((-(cf0 + cf2)) >> 1)
	data[base+strideH] = int16(cf1)
	cf0 += (cf1 + 1) >> 1
	data[base] = int16(cf0)
	var cf3 int32
	i := 1
	for i < w {
		cf3 = int32(odds[i])
		cf0 = int32(evens[i+1])
		cf3 += (-(cf2 + cf0)) >> 1
		data[base+strideH+i] = int16(cf3)
		cf2 += (cf1 + cf3 + 2) >> 2
		data[base+i] = int16(cf2)
		i++
		cf1 = int32(odds[i])
		cf2 = int32(evens[i+1])
		cf1 += (-(cf2 + cf0)) >> 1
		data[base+strideH+i] = int16(cf1)
		cf0 += (cf1 + cf3 + 2) >> 2
		data[base+i] = int16(cf0)
		i++
	}
	var hw int32
	if oddW {
		hw = int32(odds[w]) + ((-(int32(evens[w]) + int32(evens[w+1]))) >> 1)
	} else {
		hw = int32(odds[w]) - int32(evens[w])
	}
	data[base+strideH+w] = int16(hw)
	data[base+w] = int16(int32(evens[w]) + ((int32(data[base+strideH+w-1]) + hw + 2) >> 2))
	if oddW {
		data[base+w+1] = int16(int32(evens[w+1]) + ((hw + 1) >> 1))
	}
}

// dwt53VerticalForward runs the forward lifting vertically across height
// rows of the given width, each row stride elements apart in data, with
// symmetric mirror boundary extension, interleaving the horizontal pass
// per pair of rows. Fewer than four rows are only transformed horizontally.
func dwt53VerticalForward(data []int16, scratch []int16, width, height, stride int) {
	if height < 4 {
		for y := 0; y < height; y++ {
			dwt53HorizontalForward(data, y*stride, scratch, width)
		}
		return
	}
	nnn := mirrorRow(-3, height-1) * stride
	nn := mirrorRow(-2, height-1) * stride
	for i := -2; i < height; i += 2 {
		n := mirrorRow(i+1, height-1) * stride
		r := mirrorRow(i+2, height-1) * stride
		if nn <= r {
			dwt53HorizontalForward(data, n, scratch, width)
		}
		if i+2 < height {
			dwt53HorizontalForward(data, r, scratch, width)
		}
		if nn <= r {
			for k := 0; k < width; k++ {
				data[n+k] = int16(int32(data[n+k]) - ((int32(data[nn+k]) + int32(data[r+k])) >> 1))
			}
		}
		if nnn <= n {
			for k := 0; k < width; k++ {
				data[nn+k] = int16(int32(data[nn+k]) + ((int32(data[nnn+k]) + int32(data[n+k]) + 2) >> 2))
			}
		}
		nnn = n
		nn = r
	}
}

// forwardDWT applies dwtLevels successive decompositions to each plane,
// each level operating on the top-left LL region left by the previous one
// via a doubled row stride, without physically compacting rows.
func forwardDWT(planes [][]int16, width, height, dwtLevels int) {
	scratch := getScratchRow(width)
	defer putScratchRow(scratch)
	for _, plane := range planes {
		w, h := width, height
		for level := 0; level < dwtLevels; level++ {
			dwt53VerticalForward(plane, scratch, w, h, width<<uint(level))
			w = (w + 1) >> 1
			h = (h + 1) >> 1
		}
	}
}

// dwt53HorizontalInverse is the exact inverse of dwt53HorizontalForward.
func dwt53HorizontalInverse(data []int16, base int, scratch []int16, width int) {
	if width < 4 {
		return
	}
	halfW := width >> 1
	strideH := halfW
	oddW := width&1 != 0
	if oddW {
		strideH++
	}
	evens := scratch
	odds := scratch[strideH:]
	w := halfW - 1
	cf1 := int32(data[base+strideH])
	cf0 := int32(data[base]) - ((cf1 + 1) >> 1)
	evens[0] = int16(cf0)
	var cf2, cf3 int32
	i := 1
	for i < w {
		cf2 = int32(data[base+i])
		cf3 = int32(data[base+strideH+i])
		cf2 -= (cf1 + cf3 + 2) >> 2
		evens[i] = int16(cf2)
		odds[i-1] = int16(cf1 - ((-(cf0 + cf2)) >> 1))
		i++
		cf0 = int32(data[base+i])
		cf1 = int32(data[base+strideH+i])
		cf0 -= (cf1 + cf3 + 2) >> 2
		evens[i] = int16(cf0)
		odds[i-1] = int16(cf3 - ((-(cf0 + cf2)) >> 1))
		i++
	}
	hPrev := int32(data[base+strideH+w-1])
	hw := int32(data[base+strideH+w])
	ew := int32(data[base+w]) - ((hPrev + hw + 2) >> 2)
	evens[w] = int16(ew)
	odds[w-1] = int16(hPrev - ((-(int32(evens[w-1]) + ew)) >> 1))
	var ew1 int32
	if oddW {
		ew1 = int32(data[base+w+1]) - ((hw + 1) >> 1)
		evens[w+1] = int16(ew1)
		odds[w] = int16(hw - ((-(ew + ew1)) >> 1))
	} else {
		odds[w] = int16(hw + ew)
	}
	for i := 0; i < halfW; i++ {
		data[base+2*i] = evens[i]
		data[base+2*i+1] = odds[i]
	}
	if oddW {
		data[base+2*halfW] = evens[halfW]
	}
}

func dwt53VerticalInverse(data []int16, scratch []int16, width, height, stride int) {
	if height < 4 {
		for y := 0; y < height; y++ {
			dwt53HorizontalInverse(data, y*stride, scratch, width)
		}
		return
	}
	nn := mirrorRow(-2, height-1) * stride
	n := mirrorRow(-1, height-1) * stride
	for i := -1; i <= height; i += 2 {
		r := mirrorRow(i+1, height-1) * stride
		s := mirrorRow(i+2, height-1) * stride
		if n <= s {
			for k := 0; k < width; k++ {
				data[r+k] = int16(int32(data[r+k]) - ((int32(data[n+k]) + int32(data[s+k]) + 2) >> 2))
			}
		}
		if nn <= r {
			for k := 0; k < width; k++ {
				data[n+k] = int16(int32(data[n+k]) + ((int32(data[nn+k]) + int32(data[r+k])) >> 1))
			}
		}
		if i-1 >= 0 {
			dwt53HorizontalInverse(data, nn, scratch, width)
		}
		if nn <= r {
			dwt53HorizontalInverse(data, n, scratch, width)
		}
		nn = r
		n = s
	}
}

// inverseDWT undoes forwardDWT, applied coarsest level first.
func inverseDWT(planes [][]int16, width, height, dwtLevels int) {
	scratch := getScratchRow(width)
	defer putScratchRow(scratch)
	for _, plane := range planes {
		for level := dwtLevels - 1; level >= 0; level-- {
			w, h := width, height
			for l := level; l > 0; l-- {
				w = (w + 1) >> 1
				h = (h + 1) >> 1
			}
			dwt53VerticalInverse(plane, scratch, w, h, width<<uint(level))
		}
	}
}

// convertToSignMagnitude remaps every coefficient of every plane in place:
// c >= 0 -> 2c, c < 0 -> (-2c)|1. Bit 0 becomes the sign; higher bits the
// magnitude, giving a uniform "leading bit" meaning for the bitplane coder.
func convertToSignMagnitude(planes [][]int16) {
	for _, plane := range planes {
		for i, v := range plane {
			c := int32(v)
			if c < 0 {
				plane[i] = int16((-2 * c) | 1)
			} else {
				plane[i] = int16(2 * c)
			}
		}
	}
}

// convertFromSignMagnitude is the inverse of convertToSignMagnitude.
func convertFromSignMagnitude(planes [][]int16) {
	for _, plane := range planes {
		for i, v := range plane {
			c := int32(v)
			if c&1 != 0 {
				plane[i] = int16(-(c >> 1))
			} else {
				plane[i] = int16(c >> 1)
			}
		}
	}
}
