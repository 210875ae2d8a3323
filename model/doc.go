// Package model defines the provider-agnostic abstraction for invoking a
// generative model inside TalentGraph.
//
// Core goals:
//   - Keep the contract minimal: one prompt in, plain text out
//   - Strip markdown fence wrapping defensively at every call site, since
//     providers may ignore formatting instructions
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (classifier, synthesizer, renderer, router)
// remain decoupled from vendor SDKs.
package model
