// Package strq provides a queue of strings backed by a singly-linked
// list. Besides the usual insertion and removal at the ends, the
// queue can be reversed and stably sorted in place without allocating
// or discarding any of its nodes.
//
// None of the types in this package are safe for concurrent use.
// Callers that share a queue between goroutines must serialize access
// to it themselves.
package strq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
