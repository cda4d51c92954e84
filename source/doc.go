// Package source acquires raw tag data for the decoder.
//
// Files in the wild are usually gzip wrapped (player and level data) or
// zlib wrapped (region file chunks). Load and Read sniff the first two
// bytes, strip either wrapping and hand back the plain bytes together with
// the compression that was found:
//
//	data, c, err := source.Load("level.dat")
//
// Decode combines reading with nbt.DecodeWith. A Loader bounds the
// decompressed size; DefaultLoader allows DefaultMaxSize bytes.
package source
