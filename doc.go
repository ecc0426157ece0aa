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

// Package sqz implements a byte-scalable, truncation-compatible progressive
// image codec. Encoding writes coefficients most-significant-bitplane
// first, subband by subband, in a fixed round-robin schedule; any prefix of
// the resulting stream, cut at an arbitrary byte, decodes to a valid, if
// coarser, reconstruction of the source image.
//
// Encoding:
//
//	descriptor := sqz.Descriptor{Width: w, Height: h, ColorMode: sqz.ColorYCoCgR, DWTLevels: 5}
//	written, err := sqz.Encode(dest, source, &descriptor, len(dest))
//
// Decoding a full or truncated stream:
//
//	var descriptor sqz.Descriptor
//	n, err := sqz.Decode(dest, source, &descriptor)
package sqz
