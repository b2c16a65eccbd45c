// Package namemap persists resolved browse names.
//
// A bridge that derives browse names for its address space can record the
// result once and reload it later without re-parsing. Files use CBOR
// encoding with the .bnm extension:
//
//	Header   (run ID, creation time, parser variant and configuration)
//	Record   (item ID, browse name, derived flag)
//	Record
//	...
//
// The mash-browsename CLI writes these files with "record" and converts
// them to JSONL or CSV with "export".
package namemap
