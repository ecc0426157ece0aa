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

import "errors"

// Sentinel errors returned by Encode and Decode. Budget exhaustion is
// deliberately not among them: running out of destination or source bytes
// mid-stream is the normal way progressive coding ends, not a failure.
var (
	ErrOutOfMemory      = errors.New("sqz: out of memory")
	ErrInvalidParameter = errors.New("sqz: invalid parameter")
	ErrBufferTooSmall   = errors.New("sqz: buffer too small")
	ErrDataCorrupted    = errors.New("sqz: data corrupted")
)
