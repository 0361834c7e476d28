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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"GitDescribeTimeout", GitDescribeTimeout, 5 * time.Second, 2 * time.Minute},
		{"CLIDescribeTimeout", CLIDescribeTimeout, 5 * time.Second, 2 * time.Minute},
		{"CLIMaxDescribeTimeout", CLIMaxDescribeTimeout, time.Minute, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestDescribeTimeoutWithinCap(t *testing.T) {
	if CLIDescribeTimeout > CLIMaxDescribeTimeout {
		t.Errorf("CLIDescribeTimeout (%v) should not exceed CLIMaxDescribeTimeout (%v)",
			CLIDescribeTimeout, CLIMaxDescribeTimeout)
	}
}

func TestParallelismPositive(t *testing.T) {
	if GitDescribeParallelism <= 0 {
		t.Errorf("GitDescribeParallelism (%d) should be positive", GitDescribeParallelism)
	}
}
