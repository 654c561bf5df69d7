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

package log_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/ion/core/assert"
	"github.com/google/ion/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "12:34:56.789 W: plain warning",
		detailed: "12:34:56.789 Warning: plain warning",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"cat": "meow", "dog": "woof"},

		raw:      "info with values",
		brief:    "I: info with values",
		normal:   "12:34:56.789 I: info with values",
		detailed: "12:34:56.789 Info: info with values \n  cat: meow\n  dog: woof",
	}, {
		msg:      "GL error after %s: %s",
		args:     []interface{}{"BindTexture", "invalid value"},
		severity: log.Error,
		tag:      "mockgl",

		raw:      "GL error after BindTexture: invalid value",
		brief:    "E: GL error after BindTexture: invalid value",
		normal:   "12:34:56.789 E: [mockgl] GL error after BindTexture: invalid value",
		detailed: "12:34:56.789 Error: [mockgl] GL error after BindTexture: invalid value",
	},
}

func TestStyles(t *testing.T) {
	for _, test := range testMessages {
		for _, s := range []struct {
			style    log.Style
			expected string
		}{
			{log.Raw, test.raw},
			{log.Brief, test.brief},
			{log.Normal, test.normal},
			{log.Detailed, test.detailed},
		} {
			w, buf := log.Buffer()
			test.send(s.style.Handler(w))
			got := strings.TrimRight(buf.String(), "\n")
			assert.To(t).For("%s(%s)", s.style, test.msg).ThatString(got).Equals(s.expected)
		}
	}
}

func TestFindStyle(t *testing.T) {
	assert := assert.To(t)
	for _, name := range log.Styles() {
		s, ok := log.FindStyle(name)
		assert.For("FindStyle(%s)", name).ThatBoolean(ok).IsTrue()
		assert.For("FindStyle(%s).Name", name).ThatString(s.Name).Equals(name)
	}
	_, ok := log.FindStyle("fancy")
	assert.For("FindStyle(fancy)").ThatBoolean(ok).IsFalse()
}

func TestSeverityFilter(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(context.Background())
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.I(ctx, "dropped")
	log.W(ctx, "kept %d", 1)
	log.E(ctx, "kept %d", 2)
	assert.For("info").ThatBoolean(checker.HasMessage(log.Info, "dropped")).IsFalse()
	assert.For("warning").ThatBoolean(checker.HasMessage(log.Warning, "kept 1")).IsTrue()
	assert.For("error").ThatBoolean(checker.HasMessage(log.Error, "kept 2")).IsTrue()
}

func TestTraceAndValues(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(context.Background())
	ctx = log.Enter(ctx, "Visual")
	ctx = log.Enter(ctx, "LinkProgram")
	ctx = log.V{"program": 3}.Bind(ctx)
	ctx = log.V{"program": 4, "shader": 1}.Bind(ctx)
	log.D(ctx, "linking")

	msgs := checker.Messages()
	assert.For("count").ThatInteger(len(msgs)).Equals(1)
	m := msgs[0]
	assert.For("trace").ThatSlice(m.Trace).Equals([]string{"Visual", "LinkProgram"})
	assert.For("values").ThatInteger(len(m.Values)).Equals(2)
	assert.For("program").That(m.Values.Get("program")).Equals(4)
	assert.For("shader").That(m.Values.Get("shader")).Equals(1)
}

func TestChecker(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(context.Background())
	assert.For("empty").ThatBoolean(checker.HasAnyMessages()).IsFalse()
	log.W(ctx, "does not support #%s", "undef")
	assert.For("has").ThatBoolean(checker.HasMessage(log.Warning, "#undef")).IsTrue()
	assert.For("severity").ThatBoolean(checker.HasMessage(log.Error, "#undef")).IsFalse()
	checker.Clear()
	assert.For("cleared").ThatBoolean(checker.HasAnyMessages()).IsFalse()
}

func TestNoHandler(t *testing.T) {
	// Logging without a handler is silently dropped.
	log.E(context.Background(), "nobody is listening")
}
