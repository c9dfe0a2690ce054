// Package relocate implements the tag-driven relocation engine: resolve the
// configured tag, exclusion tags, and root folder against live API state,
// classify every catalog entry, and request moves for the eligible ones.
//
// The engine is strictly sequential and stateless across runs: one catalog
// snapshot is taken up front and each entry is classified from that snapshot
// alone. Update failures are recorded per entry and never abort the run;
// resolution failures abort before any entry is touched.
package relocate
