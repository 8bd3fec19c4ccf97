// Package brave implements the Brave Search API connector.
//
// The connector owns one reusable HTTP session and a local advisory
// rate limiter shared by all calls. It covers the three endpoints the
// server needs: web search, POI details and POI descriptions. Responses
// are decoded into typed structs whose optional fields default rather
// than fail when keys are missing.
package brave
