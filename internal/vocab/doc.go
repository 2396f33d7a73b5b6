// Package vocab holds the namespaces and terms used by the care-provider data cube.
//
// All values are compile-time constants; this package has no state and imports
// nothing internal. The namespace strings must stay byte-exact: consumers of the
// published cube match on them.
package vocab
