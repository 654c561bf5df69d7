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

package log

import (
	"context"
	"strings"
	"sync"
)

// Testing returns a default context with a TestHandler installed.
func Testing(t delegate) context.Context {
	return SubTest(context.Background(), t)
}

// SubTest returns the context with the TestHandler replaced with t.
// This is intended to be used for sub-tests. For example:
//
//	func TestExample(t *testing.T) {
//	  ctx := log.Testing(t)
//	  for _, test := range tests {
//	    t.Run(test.name, func(t *testing.T) {
//	      test.run(log.SubTest(ctx, t))
//	    }
//	  }
//	}
func SubTest(ctx context.Context, t delegate) context.Context {
	return PutHandler(ctx, TestHandler(t, Normal))
}

// TestHandler is a Handler that uses the style s to write records to t.
// Error and Fatal messages fail the test.
func TestHandler(t delegate, s Style) Handler {
	if t == nil {
		panic("delegate cannot be nil")
	}
	return handler{
		handle: func(m *Message) {
			switch {
			case m.Severity >= Fatal:
				t.Fatal(s.Print(m))
			case m.Severity >= Error:
				t.Error(s.Print(m))
			default:
				t.Log(s.Print(m))
			}
		},
		close: func() {},
	}
}

// delegate matches the logging methods of the test host types.
type delegate interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Checker is a Handler that records every message so that tests can check
// which messages were logged. Unlike TestHandler, a Checker never fails a test
// by itself, so it is used where errors are the expected outcome.
type Checker struct {
	mu       sync.Mutex
	messages []*Message
}

// Check returns a context that logs to a new Checker, and the Checker.
func Check(ctx context.Context) (context.Context, *Checker) {
	c := &Checker{}
	return PutHandler(ctx, c), c
}

// Handle records the message.
func (c *Checker) Handle(m *Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// Close does nothing.
func (c *Checker) Close() {}

// Messages returns a copy of the recorded messages.
func (c *Checker) Messages() []*Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Message{}, c.messages...)
}

// HasMessage returns true if a message of severity s containing substr was
// logged since the last Clear.
func (c *Checker) HasMessage(s Severity, substr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m.Severity == s && strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

// HasAnyMessages returns true if anything was logged since the last Clear.
func (c *Checker) HasAnyMessages() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) > 0
}

// Clear forgets all the recorded messages.
func (c *Checker) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
