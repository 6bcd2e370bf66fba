// Package transport provides byte sinks for session output: a local PTY
// running a shell, and an in-memory pipe for tools and tests.
package transport
