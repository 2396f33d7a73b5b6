// Package loader reads the care-provider registry CSV.
//
// Loading happens in two steps. ReadTable parses the whole file into a Table of
// named string columns; any malformed line aborts the load, there is no partial
// result. Table.Records then projects the three grouping columns into typed
// Records and fails fast if any of them is missing from the header.
//
// Cell values are kept exactly as read: no trimming, no case folding.
package loader
