// Package catalog loads the compact binary key index shipped with the
// application and shares it process-wide.
//
// The index maps the numeric ids used by generated accessors to localization
// keys. It has two sections, written by the lstrings build step:
//
//	uint32 count
//	count × { uint32 id; uint32 len; [len]byte key; uint32 hasArguments }
//	uint32 count
//	count × { uint32 id; uint32 len; [len]byte key }
//
// All integers are little-endian. The first section lists simple keys, the
// second lists pluralized keys; plural templates always take at least the
// quantity argument, so they carry no argument flag.
//
// # Loading
//
// Decode parses an uncompressed blob. Open additionally accepts zstd and gzip
// compressed blobs:
//
//	ix, err := catalog.Open(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// A truncated or malformed blob is a packaging defect. Decode reports it as an
// error wrapping ErrTruncated, ErrTrailingData, ErrInvalidKey or ErrInvalidID;
// the Must variants panic so startup aborts instead of running with a partial index.
//
// # Process-wide index
//
// A Registry loads its blob at most once, no matter how many goroutines ask:
//
//	reg := catalog.NewRegistry(catalog.FromFS(assets, "strings/catalog.bin"))
//	ix := reg.MustIndex()
//
// Default returns the index of the process-wide registry. Unless SetDefault
// installed one, it is built on first use from the path in Config
// (LSTRINGS_CATALOG_PATH).
package catalog
