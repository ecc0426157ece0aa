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

// schedule assigns every (color mode, plane, level, orientation) subband a
// round number: the round at which its bitplane coding first becomes
// eligible to run. Luma/grayscale subbands lead; chroma subbands lag by one
// round per level so that a truncated stream always carries a usable luma
// image before it starts spending budget on color.
var schedule = [colorModeCount][3][dwtMaxLevel][numOrientations]uint8{
	// Grayscale
	{
		{
			{0, 1, 1, 2},
			{0, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
		},
	},
	// YCoCg-R
	{
		{
			{0, 1, 1, 2},
			{0, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
	},
	// Oklab
	{
		{
			{0, 1, 1, 2},
			{0, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
	},
	// logl1
	{
		{
			{0, 1, 1, 2},
			{0, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
		{
			{1, 2, 2, 3},
			{0, 3, 3, 4},
			{0, 4, 4, 5},
			{0, 5, 5, 6},
			{0, 6, 6, 7},
			{0, 7, 7, 8},
			{0, 8, 8, 9},
			{0, 9, 9, 10},
		},
	},
}

// initSubbandFn is called the first time a subband becomes eligible for its
// round: it builds the LIP and writes or reads the subband's max_bitplane.
type initSubbandFn func(band *subband, buf *bitBuffer) bool

// bitplaneTaskFn codes one bitplane (sorting pass + refinement pass) of a
// subband that is already at or past its eligible round. It returns false
// once the bit buffer runs out of room or data.
type bitplaneTaskFn func(band *subband, buf *bitBuffer) bool

// scheduleTask drives every subband of every plane through init and task in
// round-robin order across ascending rounds, visiting luma subbands first
// within a round and then chroma subbands, until every subband has spent
// its last bitplane or the bit buffer runs out. This is the single
// traversal shared by both Encode (with encodeInitSubband/encodeBitplane)
// and Decode (with decodeInitSubband/decodeBitplane): the codestream is
// truncation-compatible only because encoder and decoder walk subbands in
// exactly the same order.
func (ctx *codecContext) scheduleTask(buf *bitBuffer, init initSubbandFn, task bitplaneTaskFn) bool {
	state, plane, level, orientation := 0, 0, 0, 0
	round := 0
	done := false
	for !done && !buf.eob() {
		done = true
		for {
			band := ctx.bands[plane][level][orientation]
			if round < band.round || (round > band.round && band.bitplane == 0) {
				done = done && round > band.round
			} else {
				if band.round == round && !band.initialized {
					if !init(band, buf) {
						return true
					}
				}
				if !task(band, buf) {
					return true
				}
				done = done && band.bitplane == 0
			}
			if state == 0 {
				orientation++
				if orientation >= int(numOrientations) {
					level++
					if level < ctx.dwtLevels {
						orientation = 1
					} else {
						orientation = 0
					}
					if orientation == 0 {
						level = 0
						if ctx.numPlanes > 1 {
							state, plane = 1, 1
						} else {
							state, plane = 0, 0
							break
						}
					}
				}
			} else {
				plane++
				if plane >= ctx.numPlanes {
					plane = 1
					orientation++
					if orientation >= int(numOrientations) {
						level++
						if level < ctx.dwtLevels {
							orientation = 1
						} else {
							orientation = 0
						}
						if orientation == 0 {
							level = 0
							state, plane = 0, 0
							break
						}
					}
				}
			}
		}
		round++
	}
	return true
}
