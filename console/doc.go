// Package console implements the process-facing edges of semsearch: collecting
// the query and body from arguments or stdin, and emitting exactly one line of
// JSON on stdout for every invocation.
package console
