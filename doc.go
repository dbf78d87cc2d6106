// Package routechoice is the batched entry point that drives route-set
// enumeration (package enumerator), Path-Size Logit scoring (package
// choice), and link loading (package loading) in parallel over a batch
// of origin-destination pairs, then reduces and, optionally, persists
// the result through package checkpoint.
//
// Requests validate in numbered steps before any worker starts, then
// fan out across a worker pool built on golang.org/x/sync/errgroup for
// first-error propagation.
//
//	go get github.com/katalvlaran/routechoice
package routechoice
