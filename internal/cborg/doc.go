// Package cborg is a small client for the CBORG LLM gateway, a LiteLLM-based
// proxy that fronts multiple model providers behind one OpenAI-compatible
// API and one billing key.
//
// Only the gateway-specific management surface lives here (key spend and
// budget information); chat traffic goes through the official OpenAI SDK
// pointed at the gateway's OpenAI-compatible base URL.
//
// https://cborg.lbl.gov
package cborg
