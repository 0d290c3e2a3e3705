// Package api handles incoming HTTP requests for the numeral conversion
// endpoints. It reads query parameters, delegates to the numeral package,
// and formats JSON success bodies or problem-details error bodies.
package api
