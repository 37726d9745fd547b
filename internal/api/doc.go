// Package api handles incoming HTTP requests, request decoding and response
// formatting. It adapts the flashcard generation service to JSON over HTTP
// and converts every failure into a {"error": ...} body with a status code
// chosen by MapErrorToStatusCode.
package api
