// Package organize runs the end-to-end pipeline: scan the source folder,
// build the output topology, place every client's files, write manifests,
// and record the run. A file lock on the target root keeps concurrent runs
// from interleaving their folder trees. Cancellation is honored between
// clients so an in-flight client always finishes whole.
package organize
