// Package harness runs expression conformance suites.
//
// A suite is a YAML file listing expressions with either an expected
// formatted result or an expected error code. Suites keep the behavioral
// contract of the evaluator in reviewable data files rather than
// scattered across test functions, and golden-file comparison pins the
// rendered output of whole suites against accidental drift.
package harness
