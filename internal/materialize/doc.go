// Package materialize copies classified files into their resolved category
// folders. Copies are size-verified, filenames are sanitized on the way in,
// and destination collisions follow the run mode: fresh backs the existing
// file aside, resume skips it, rerun never sees one because it writes into a
// brand-new version folder. A failed copy never aborts the batch.
package materialize
