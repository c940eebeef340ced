// Copyright 2025 Poiesic Systems
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


package semsearch

import "errors"

var (
	// ErrCallbackRequired is returned when SearchAsync is called without a callback.
	ErrCallbackRequired = errors.New("completion callback required")

	// ErrInvalidPoolSize is returned when the async pool size is not positive.
	ErrInvalidPoolSize = errors.New("async pool size must be greater than 0")
)
