// Package services contains the core search logic: composing the
// dependent Brave API calls, the local-to-web fallback and the text
// formatting of results.
package services
