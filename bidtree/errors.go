// Copyright 2025 Naren Yellavula
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

package bidtree

import "errors"

var (
	// ErrMalformedKey is returned when a bid ID is not a base-10 integer.
	ErrMalformedKey = errors.New("malformed bid id")
	// ErrDuplicateKey is returned when a bid ID is already in the index.
	// The existing bid is kept.
	ErrDuplicateKey = errors.New("duplicate bid id")
)
