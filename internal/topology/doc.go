// Package topology resolves and creates the three-tier output folder tree:
// run folder, client folder, version folder, category subfolders.
//
// The processing mode is fixed per Builder. Fresh always creates a new
// timestamped run folder; rerun and resume reuse the most recently modified
// existing run folder and degrade to fresh behaviour (with a warning) when
// none exists. Every run adds a new version folder under the client folder
// so history is preserved. All directory creation is create-if-missing and
// never fails merely because the target already exists.
package topology
