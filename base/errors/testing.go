// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Error(args ...any)
}

// Test takes the given error and errors the test it if it is non-nil.
// The intended usage is:
//
//	errors.Test(t, MyFunc(v))
func Test(t TestingT, err error) error {
	if err != nil {
		t.Error(err)
	}
	return err
}

// Test1 takes the given value and error and returns the value if
// the error is nil, and errors the test and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Test1(t, MyFunc(v))
func Test1[T any](t TestingT, v T, err error) T {
	if err != nil {
		t.Error(err)
	}
	return v
}
