// Copyright 2025 LinLog Authors
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

// Package lltest is a helper package for test packages in the LinLog
// project. As such it should only be imported in _test.go files.
package lltest

import (
	"math/rand"
	"os"

	"linlog.dev/go/ll"
)

// UpdateGoldenFiles determines whether golden-file tests rewrite their
// txtar archives instead of failing on a mismatch.
var UpdateGoldenFiles = os.Getenv("LINLOG_UPDATE") != ""

// Shuffle returns a pseudo-random permutation of fs, deterministic in seed.
// Congruence tests feed permuted contexts through the exchange layer.
func Shuffle(seed int64, fs []ll.Formula) []ll.Formula {
	out := make([]ll.Formula, len(fs))
	copy(out, fs)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
