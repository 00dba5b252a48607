// Package task implements the minisys command pipeline.
//
// A Task is a unit of work against memory or a communication card. Read
// tasks fill a Data buffer which later write tasks take by reference, so
// the output of one task becomes the input of the next. A Composite runs an
// ordered list of tasks as one, and a Queue holds tasks until an execution
// unit fetches them.
//
// Tasks never return errors from Execute. Device failures are stored in the
// task's Result for later inspection, and a failed child of a Composite does
// not stop its siblings.
package task
