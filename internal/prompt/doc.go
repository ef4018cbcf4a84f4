// Package prompt builds the natural-language instructions sent to the hosted
// model for every AI feature.
//
// Each feature has a fixed template embedded in the binary. Templates
// interpolate caller-supplied parameters, truncating free-text inputs to a
// feature-specific maximum length, and embed an example of the JSON object
// the model must return. Inputs are otherwise passed through as given:
// blank strings are not rejected here.
package prompt
