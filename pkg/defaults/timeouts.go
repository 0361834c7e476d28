// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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


package defaults

import "time"

// Git timeouts for describe operations.
const (
	// GitDescribeTimeout bounds a single git describe invocation.
	// A shorter parent context deadline still wins.
	GitDescribeTimeout = 30 * time.Second

	// GitDescribeParallelism is the default number of concurrent git
	// invocations when describing several repositories.
	GitDescribeParallelism = 4
)

// CLI timeouts for command-line operations.
const (
	// CLIDescribeTimeout is the default --timeout of the describe command.
	CLIDescribeTimeout = GitDescribeTimeout

	// CLIMaxDescribeTimeout caps --timeout so a hung git cannot block forever.
	CLIMaxDescribeTimeout = 10 * time.Minute
)
