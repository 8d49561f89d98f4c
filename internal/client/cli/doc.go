// Package cli is the interactive terminal frontend of the template fill
// workflow. It is a stateless projection over the workflow controller: every
// command reads controller state through accessors and moves it forward
// through controller operations, never around them.
package cli
