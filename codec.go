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
	"math/bits"

	"github.com/samber/lo"
	"modernc.org/mathutil"
)

const (
	headerMagic  = 0xa5
	minDimension = 8
	maxDimension = (1 << 16) - 1
)

// Descriptor carries the parameters of an image being encoded or decoded.
// Encode takes every field but NumPlanes from the caller, clamps DWTLevels
// and sets NumPlanes. Decode fills every field from the stream header, so
// the caller need not supply any of them.
type Descriptor struct {
	Width, Height int
	ColorMode     ColorMode
	DWTLevels     int
	ScanOrder     ScanOrder
	Subsampling   bool

	NumPlanes int
}

// validateInput checks a descriptor's fields against the codec's supported
// ranges. readOnly is true when validating a descriptor Decode has just
// parsed out of a stream: an out-of-range field there means the stream
// itself is corrupt, not that the caller passed bad parameters.
func validateInput(d *Descriptor, readOnly bool) error {
	if d.Width < minDimension || d.Width > maxDimension ||
		d.Height < minDimension || d.Height > maxDimension ||
		d.ColorMode < ColorGrayscale || d.ColorMode >= colorModeCount ||
		d.ScanOrder < ScanRaster || d.ScanOrder >= scanOrderCount ||
		d.DWTLevels <= 0 || d.DWTLevels > dwtMaxLevel {
		if readOnly {
			return ErrDataCorrupted
		}
		return ErrInvalidParameter
	}
	smallest := mathutil.Min(d.Width, d.Height)
	maxLevel := int(bits.Len32(uint32(smallest))) - 3
	if maxLevel > dwtMaxLevel {
		maxLevel = dwtMaxLevel
	}
	if d.DWTLevels > maxLevel {
		if readOnly {
			return ErrDataCorrupted
		}
		d.DWTLevels = maxLevel
	}
	if !readOnly {
		d.NumPlanes = numberOfPlanes[d.ColorMode]
	}
	return nil
}

func encodeHeader(d *Descriptor, w *bitBuffer) bool {
	w.writeBits(headerMagic, 8)
	w.writeBits(uint32(d.Width-1), 16)
	w.writeBits(uint32(d.Height-1), 16)
	w.writeBits(uint32(d.ColorMode), 2)
	w.writeBits(uint32(d.DWTLevels-1), 3)
	w.writeBits(uint32(d.ScanOrder), 2)
	w.writeBit(lo.Ternary[uint32](d.Subsampling, 1, 0))
	return !w.eob()
}

func decodeHeader(d *Descriptor, r *bitBuffer) bool {
	if r.readBits(8) != headerMagic {
		return false
	}
	d.Width = int(r.readBits(16)) + 1
	d.Height = int(r.readBits(16)) + 1
	d.ColorMode = ColorMode(r.readBits(2))
	d.DWTLevels = int(r.readBits(3)) + 1
	d.ScanOrder = ScanOrder(r.readBits(2))
	d.NumPlanes = numberOfPlanes[d.ColorMode%colorModeCount]
	// A failed read leaves the buffer exhausted, so the last field's read
	// fails whenever any earlier one did.
	subsampling := r.readBit()
	d.Subsampling = subsampling > 0
	return subsampling >= 0
}

// Encode compresses source (Width*Height*NumPlanes(ColorMode) interleaved
// 8-bit samples) into dest, spending at most budget bytes, and returns how
// many bytes it actually wrote. A smaller written count than budget means
// the image was fully losslessly represented before the budget ran out;
// callers wanting the smallest possible lossless size should pass a
// generous budget and use the returned count. descriptor is clamped in
// place (e.g. DWTLevels reduced to what Width/Height support), so callers
// can inspect it afterward to learn what was actually encoded.
func Encode(dest, source []byte, descriptor *Descriptor, budget int) (int, error) {
	if err := validateInput(descriptor, false); err != nil {
		return 0, err
	}
	if budget > len(dest) {
		budget = len(dest)
	}
	w := newBitBuffer(dest[:budget])
	if !encodeHeader(descriptor, w) {
		return 0, ErrBufferTooSmall
	}
	ctx := newCodecContext(descriptor.Width, descriptor.Height, descriptor.DWTLevels, descriptor.ColorMode, descriptor.ScanOrder, descriptor.Subsampling)
	forwardColor(ctx.colorMode, source, ctx.planes)
	forwardDWT(ctx.planes, ctx.width, ctx.height, ctx.dwtLevels)
	convertToSignMagnitude(ctx.planes)
	ctx.scheduleTask(w, ctx.encodeInitSubband, encodeBitplane)
	return (w.bitsUsed() + 7) / 8, nil
}

// Decode expands a stream produced by Encode (or any truncated prefix of
// one) into dest, filling descriptor with the image parameters read back
// out of the stream. dest must be at least Width*Height*NumPlanes bytes, a
// size the caller can learn ahead of time by passing a zero-length dest and
// inspecting descriptor and the returned size alongside ErrBufferTooSmall.
func Decode(dest, source []byte, descriptor *Descriptor) (int, error) {
	r := newBitBuffer(source)
	if !decodeHeader(descriptor, r) {
		return 0, ErrInvalidParameter
	}
	if err := validateInput(descriptor, true); err != nil {
		return 0, err
	}
	length := descriptor.Width * descriptor.Height * descriptor.NumPlanes
	if len(dest) < length {
		return length, ErrBufferTooSmall
	}
	ctx := newCodecContext(descriptor.Width, descriptor.Height, descriptor.DWTLevels, descriptor.ColorMode, descriptor.ScanOrder, descriptor.Subsampling)
	ctx.scheduleTask(r, ctx.decodeInitSubband, decodeBitplane)
	ctx.roundDecodedCoefficients()
	convertFromSignMagnitude(ctx.planes)
	inverseDWT(ctx.planes, ctx.width, ctx.height, ctx.dwtLevels)
	inverseColor(ctx.colorMode, ctx.planes, dest[:length])
	return length, nil
}
