// Package api
// Author: momentics <momentics@gmail.com>
//
// Core contracts of hioload-poll: the Source registration capability,
// the Registry collaborator boundary, and the value types (Token, Interest,
// Event) that flow across it.
package api
