// Package errors provides the classified error primitives used across siteconf.
//
// Every failure surfaced to the user is a ClassifiedError carrying a category,
// a severity and a structured context naming the offending configuration field.
// The two categories that matter to callers are:
//   - CategoryConfig: the configuration source is malformed or incomplete
//   - CategoryResolution: a declared reference does not resolve
//
// Example usage:
//
//	err := errors.ResolutionError("theme not found").
//		WithField("theme_name").
//		WithReference("oxide").
//		Build()
package errors
