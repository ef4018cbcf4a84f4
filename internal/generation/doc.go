// Package generation implements the generation request pipeline: build a
// prompt, call the hosted model, retry rate-limited calls with exponential
// backoff, extract the JSON object from the reply and decode it into a typed,
// validated result.
//
// The hosted model sits behind the Model port so the pipeline can be tested
// without network access; platform/gemini provides the production adapter.
// Service is the single Generator implementation used by the HTTP layer.
package generation
