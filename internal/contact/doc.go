// Package contact provides the Contact value type and the in-memory Store
// that holds the contact list for the lifetime of the process.
//
// The store is an ordered slice scanned linearly:
//   - Insertion order is preserved and duplicate names are allowed
//   - Edit and delete act on the first exact-name match only
//   - Searches are lazy iterators over the current contents
//
// Names are stored exactly as given. Lookups compare names in Unicode NFC,
// so "Jos\u00e9" and "Jose\u0301" find each other whichever form was
// stored or typed.
//
// A Store is owned by a single goroutine. It has no locking and no
// persistence of its own; see package textfile for the on-disk format.
package contact
