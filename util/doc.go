// Package util provides the data helpers REST client code leans on when
// shaping request arguments and response bodies.
//
// It covers case forcing, string truncation, recursive map merging,
// cleaning, flattening and redaction, URL component checks, and a few
// generic slice and map helpers.
package util
