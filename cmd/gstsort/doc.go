// Command gstsort scans a folder of GST spreadsheets, groups them by client
// and jurisdiction, and organizes them into a versioned folder tree.
package main
