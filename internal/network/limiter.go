// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package network

import (
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter returns a throttler that lets one request through every pacing
// interval, allowing up to burst requests at once.  Zero or negative pacing
// disables the throttling.
func NewLimiter(pacing time.Duration, burst uint) *rate.Limiter {
	if burst == 0 {
		burst = 1
	}
	if pacing <= 0 {
		return rate.NewLimiter(rate.Inf, int(burst))
	}
	return rate.NewLimiter(rate.Every(pacing), int(burst))
}
