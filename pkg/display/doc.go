// Package display turns plans and run reports into a unit-grouped view and
// renders that view as rich terminal output or plain text. JSON output
// encodes the same view.
package display
