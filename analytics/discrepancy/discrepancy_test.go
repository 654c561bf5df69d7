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

package discrepancy_test

import (
	"sort"
	"testing"

	"github.com/google/ion/analytics/discrepancy"
	"github.com/google/ion/core/assert"
)

const epsilon = 1e-12

func TestSampleMapping(t *testing.T) {
	assert := assert.To(t)
	m := discrepancy.NewSampleMapping(2.0, 5.0, 4)
	for _, test := range []struct{ time, normalized float64 }{
		{2.0, 0.125},
		{3.0, 0.375},
		{4.0, 0.625},
		{5.0, 0.875},
	} {
		assert.For("Map(%v)", test.time).ThatFloat(m.Map(test.time)).Equals(test.normalized, epsilon)
		assert.For("Unmap(%v)", test.normalized).ThatFloat(m.Unmap(test.normalized)).Equals(test.time, epsilon)
	}
	assert.For("UnmapDuration(0.25)").ThatFloat(m.UnmapDuration(0.25)).Equals(1.0, epsilon)
	assert.For("UnmapDuration(0.75)").ThatFloat(m.UnmapDuration(0.75)).Equals(3.0, epsilon)
}

func TestSampleMappingPreconditions(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name       string
		begin, end float64
		n          int
		expect     error
	}{
		{"one sample", 0, 1, 1, discrepancy.ErrTooFewSamples},
		{"no samples", 0, 1, 0, discrepancy.ErrTooFewSamples},
		{"empty range", 1, 1, 4, discrepancy.ErrEmptyRange},
		{"reversed range", 2, 1, 4, discrepancy.ErrEmptyRange},
	} {
		func() {
			defer func() {
				err, _ := recover().(error)
				assert.For(test.name).ThatError(err).Equals(test.expect)
			}()
			discrepancy.NewSampleMapping(test.begin, test.end, test.n)
		}()
	}
}

func TestNormalizeSamples(t *testing.T) {
	assert := assert.To(t)
	expect := []float64{1.0 / 8.0, 3.0 / 8.0, 5.0 / 8.0, 7.0 / 8.0}
	for _, test := range []struct {
		name    string
		samples []float64
	}{
		{"edge", []float64{0.0, 1.0 / 3.0, 2.0 / 3.0, 1.0}},
		{"center", []float64{1.0 / 8.0, 3.0 / 8.0, 5.0 / 8.0, 7.0 / 8.0}},
		{"unsorted", []float64{1.0, 1.0 / 3.0, 0.0, 2.0 / 3.0}},
	} {
		in := append([]float64{}, test.samples...)
		m := discrepancy.NewSampleMapping(0, 1, len(in))
		if test.name == "center" {
			m = discrepancy.NewSampleMapping(1.0/8.0, 7.0/8.0, len(in))
		}
		got := discrepancy.NormalizeSamples(in, m)
		assert.For("%s length", test.name).ThatSlice(got).IsLength(len(expect))
		for i := range expect {
			assert.For("%s[%d]", test.name, i).ThatFloat(got[i]).Equals(expect[i], epsilon)
		}
		assert.For("%s input untouched", test.name).ThatSlice(in).Equals(test.samples)
	}
}

func TestDiscrepancy(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name    string
		samples []float64
		expect  float64
	}{
		{"empty", []float64{}, 0.0},
		{"single", []float64{0.5}, 0.5},
		{"triple", []float64{0.5, 0.5, 0.5}, 0.5},
		{"uniform", []float64{1.0 / 8.0, 3.0 / 8.0, 5.0 / 8.0, 7.0 / 8.0}, 0.25},
		{"clustered", []float64{1.0 / 8.0, 5.0 / 8.0, 5.0 / 8.0, 7.0 / 8.0}, 0.5},
		{"thirds", []float64{0.0, 1.0 / 3.0, 2.0 / 3.0, 1.0}, 0.5},
	} {
		got := discrepancy.Discrepancy(test.samples)
		assert.For(test.name).ThatFloat(got.Discrepancy).Equals(test.expect, epsilon)
	}
}

func TestDiscrepancyInterval(t *testing.T) {
	assert := assert.To(t)
	got := discrepancy.Discrepancy([]float64{0.0, 1.0})
	assert.For("ends").That(got).Equals(discrepancy.Interval{Discrepancy: 1, Begin: 0, End: 1, NumSamples: 0})

	got = discrepancy.Discrepancy([]float64{1.0 / 8.0, 3.0 / 8.0, 5.0 / 8.0, 5.0 / 8.0, 7.0 / 8.0})
	assert.For("discrepancy").ThatFloat(got.Discrepancy).Equals(0.3, epsilon)
	assert.For("begin").ThatFloat(got.Begin).Equals(0.125, epsilon)
	assert.For("end").ThatFloat(got.End).Equals(0.625, epsilon)
	assert.For("samples").ThatInteger(got.NumSamples).Equals(1)
	assert.For("string").ThatString(got).Contains("(1 samples)")
}

func TestNormalizedThirds(t *testing.T) {
	samples := []float64{0.0, 1.0 / 3.0, 2.0 / 3.0, 1.0}
	m := discrepancy.NewSampleMapping(samples[0], samples[len(samples)-1], len(samples))
	got := discrepancy.Discrepancy(discrepancy.NormalizeSamples(samples, m))
	assert.For(t, "normalized").ThatFloat(got.Discrepancy).Equals(0.25, epsilon)
}

func TestClusteringRaisesDiscrepancy(t *testing.T) {
	uniform := make([]float64, 20)
	clustered := make([]float64, 20)
	for i := range uniform {
		uniform[i] = (float64(i) + 0.5) / 20
		clustered[i] = uniform[i]
	}
	// Move a run of samples out of the middle to open a gap.
	for i := 8; i < 12; i++ {
		clustered[i] = 0.7
	}
	sort.Float64s(clustered)
	u := discrepancy.Discrepancy(uniform).Discrepancy
	c := discrepancy.Discrepancy(clustered).Discrepancy
	assert.For(t, "uniform").ThatFloat(u).Equals(0.05, epsilon)
	assert.For(t, "clustered").ThatFloat(c).IsAtLeast(u + 0.1)
}

func TestAbsoluteTimestamp(t *testing.T) {
	assert := assert.To(t)
	assert.For("empty").That(discrepancy.AbsoluteTimestamp(nil)).Equals(discrepancy.Interval{})
	assert.For("single").That(discrepancy.AbsoluteTimestamp([]float64{4})).Equals(
		discrepancy.Interval{Discrepancy: 0.5, Begin: 4, End: 4})

	a := discrepancy.AbsoluteTimestamp([]float64{0, 1, 2, 3, 5, 6}).Discrepancy
	b := discrepancy.AbsoluteTimestamp([]float64{0, 1, 2, 3, 5, 7}).Discrepancy
	c := discrepancy.AbsoluteTimestamp([]float64{0, 2, 3, 4}).Discrepancy
	d := discrepancy.AbsoluteTimestamp([]float64{0, 2, 3, 4, 5}).Discrepancy
	assert.For("longer tail").ThatBoolean(a < b).IsTrue()
	assert.For("extra good frame").ThatFloat(c).Equals(d, 1e-9)
}

func TestAbsoluteTimestampBounds(t *testing.T) {
	got := discrepancy.AbsoluteTimestamp([]float64{0, 2, 3, 4})
	assert.For(t, "begin").ThatFloat(got.Begin).Equals(0, 1e-9)
	assert.For(t, "end").ThatFloat(got.End).Equals(2, 1e-9)
}
