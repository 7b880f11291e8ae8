// Package textmatch scores reference corpora against a query and keeps the
// best candidates.
//
// A Matcher is configured once with a Sensitivity, a keep count, a similarity
// algorithm and the optional first-letter pre-filter, then searched against
// an in-memory slice, one corpus file, one large file split across workers,
// or a whole directory of files. Parallel searches split their input into
// contiguous partitions, rank each partition locally and merge the partial
// results in partition order once every worker has returned, so the output
// does not depend on the number of workers.
//
// Failure to read a named file is reported with ErrSourceUnreadable. An
// empty result is not an error.
package textmatch
