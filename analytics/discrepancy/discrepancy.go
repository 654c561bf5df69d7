// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package discrepancy measures how far a sequence of samples deviates from a
// uniformly distributed one.
//
// Applied to frame timestamps, discrepancy is the duration of the worst run of
// slow frames, adjusted for the good frames in between. Unlike a histogram it
// takes the order of the frames into account, so consecutive slow frames
// coalesce. Given the timestamp series
//
//	A = +++++++++++++++++ +++++++
//	B = +++++++ +++++++++++ +++++
//	C = ++++++++++ + ++++++++++++
//
// the discrepancy of C is roughly twice that of B, while A and B score about the
// same. It says nothing about the average case, so it is best reported next to
// the mean frame time.
package discrepancy

import (
	"fmt"

	"github.com/google/ion/core/fault"
	"golang.org/x/exp/slices"
)

const (
	// ErrTooFewSamples is the panic value of NewSampleMapping for fewer than two samples.
	ErrTooFewSamples = fault.Const("sample mapping needs at least two samples")
	// ErrEmptyRange is the panic value of NewSampleMapping for an empty time range.
	ErrEmptyRange = fault.Const("sample mapping needs end > begin")
)

// SampleMapping transforms samples between the time domain and the unitless
// normalized domain that discrepancy is computed in.
//
// For N samples, the first maps to 0.5/N and the last to (N-0.5)/N, so four
// evenly spaced samples land on the * marks:
//
//	0   1/8  1/4  3/8  1/2  5/8  3/4  7/8   1
//	|    *    |    *    |    *    |    *    |
//
// The sequence i/(N-1) has twice the discrepancy of (i+1/2)/N. The time domain
// is unbounded, so the two cases should not be told apart.
type SampleMapping struct {
	timeBegin       float64
	normalizedBegin float64
	scale           float64
	invScale        float64
}

// NewSampleMapping returns the mapping for n samples spread over
// [begin, end]. It panics unless n > 1 and end > begin: both are programmer
// errors.
func NewSampleMapping(begin, end float64, n int) SampleMapping {
	if n <= 1 {
		panic(ErrTooFewSamples)
	}
	if !(end > begin) {
		panic(ErrEmptyRange)
	}
	count := float64(n)
	normalizedBegin := 0.5 / count
	normalizedEnd := (count - 0.5) / count
	scale := (normalizedEnd - normalizedBegin) / (end - begin)
	return SampleMapping{
		timeBegin:       begin,
		normalizedBegin: normalizedBegin,
		scale:           scale,
		invScale:        1.0 / scale,
	}
}

// Map returns the normalized position of the time t.
func (m SampleMapping) Map(t float64) float64 {
	return m.normalizedBegin + m.scale*(t-m.timeBegin)
}

// Unmap returns the time at the normalized position n.
func (m SampleMapping) Unmap(n float64) float64 {
	return m.timeBegin + m.invScale*(n-m.normalizedBegin)
}

// UnmapDuration returns the duration of a normalized length. Unlike Unmap it
// does not translate.
func (m SampleMapping) UnmapDuration(length float64) float64 {
	return length * m.invScale
}

// NormalizeSamples returns a sorted copy of samples mapped into the normalized
// domain. The input is not modified.
func NormalizeSamples(samples []float64, m SampleMapping) []float64 {
	out := slices.Clone(samples)
	slices.Sort(out)
	for i, s := range out {
		out[i] = m.Map(s)
	}
	return out
}

// Interval is the result of a discrepancy computation: the value and the
// interval it was measured over.
type Interval struct {
	// Discrepancy of the samples in the interval.
	Discrepancy float64
	// Begin and End bound the interval.
	Begin, End float64
	// NumSamples is the number of samples strictly inside the interval.
	NumSamples int
}

func (i Interval) String() string {
	return fmt.Sprintf("%g over [%g, %g] (%d samples)", i.Discrepancy, i.Begin, i.End, i.NumSamples)
}

// Discrepancy computes the discrepancy of samples, which must be sorted and
// lie in [0, 1]. An empty sequence has zero discrepancy.
//
// Only regions sampled less densely than the average are considered. The
// mathematical definition also counts denser regions.
func Discrepancy(samples []float64) Interval {
	largest := Interval{}
	n := len(samples)
	if n == 0 {
		return largest
	}
	inv := 1.0 / float64(n)

	// Each location holds the number of samples strictly before it (less) and
	// the number at or before it (lessEqual). 0 and 1 bracket the samples.
	locations := make([]float64, 0, n+2)
	less := make([]int, 0, n+2)
	lessEqual := make([]int, 0, n+2)
	if samples[0] > 0 {
		locations, less, lessEqual = append(locations, 0), append(less, 0), append(lessEqual, 0)
	}
	for i, s := range samples {
		locations, less, lessEqual = append(locations, s), append(less, i), append(lessEqual, i+1)
	}
	if samples[n-1] < 1 {
		locations, less, lessEqual = append(locations, 1), append(less, n), append(lessEqual, n)
	}

	// Kadane's maximum subarray, where the value of a gap is its length minus
	// the fraction of samples strictly inside it. current is the best open
	// interval ending at locations[i].
	current := 0.0
	begin, end := 0, 0
	for i := 1; i < len(locations); i++ {
		length := locations[i] - locations[i-1]
		extended := current + length - float64(less[i]-less[i-1])*inv
		fresh := length - float64(less[i]-lessEqual[i-1])*inv
		if extended >= fresh {
			current, end = extended, i
		} else {
			current, begin, end = fresh, i-1, i
		}
		if current > largest.Discrepancy {
			largest = Interval{
				Discrepancy: current,
				Begin:       locations[begin],
				End:         locations[end],
				NumSamples:  less[end] - lessEqual[begin],
			}
		}
	}
	return largest
}

// AbsoluteTimestamp returns the discrepancy of a series of timestamps in the
// unit of the timestamps. Adding good frames to the series does not change
// the value, so runs of different length can be compared: {0, 2, 3, 4} and
// {0, 2, 3, 4, 5} score the same.
//
// A single timestamp scores 0.5 over the empty interval at that timestamp.
func AbsoluteTimestamp(timestamps []float64) Interval {
	switch len(timestamps) {
	case 0:
		return Interval{}
	case 1:
		return Interval{Discrepancy: 0.5, Begin: timestamps[0], End: timestamps[0]}
	}
	m := NewSampleMapping(slices.Min(timestamps), slices.Max(timestamps), len(timestamps))
	largest := Discrepancy(NormalizeSamples(timestamps, m))
	largest.Discrepancy = m.UnmapDuration(largest.Discrepancy)
	largest.Begin = m.Unmap(largest.Begin)
	largest.End = m.Unmap(largest.End)
	return largest
}
