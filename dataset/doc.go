// Package dataset assembles the training and validation record sets for the
// symbol classifier: it expands every leader's derivation closure against
// the sample store, partitions real samples, balances thin classes with
// seeded augmentation, and pairs negated records with slash strokes.
//
// What
//
//   - Record: one fully resolved training instance — the stored sample to
//     load, the transformation chain to apply, the optional negation overlay
//     with its slash sample, the augmentation seed, and the class label.
//     A Record never contains stroke data; it is a recipe, resolved lazily
//     by the consumer against the store.
//   - Dataset: the train and validation record slices plus per-class Stats.
//   - Build: the whole pipeline in one call, deterministic for a fixed
//     model, store content, and seed.
//
// Pipeline
//
//	For each leader in sorted order, every closure path is expanded over the
//	source symbol's stored keys (ascending). Each path's key list is
//	partitioned by taking the first ceil(n·v) keys as validation and the
//	rest as training; a single-sample list lands on both sides so no class
//	is ever absent from either. Negated records draw a slash sample from a
//	round-robin cycle over the slash group's keys on the same partition
//	side; the cycle advances only when a record asks, so record i receives
//	slash pool[i mod len(pool)].
//
//	A class whose closure reaches no stored sample fails the build with
//	ErrNoSamples naming the class; WithSkipStarved downgrades that to a
//	skip for callers that prefer to report the gap themselves.
//
//	Augmentation then tops up the training side: a logistic balance curve
//	maps the class's real sample count — the training-side keys summed over
//	the closure's distinct sources, not the expanded row count — to a copy
//	count, steep for thin classes and flat for rich ones. Each copy draws
//	its base uniformly from the pre-augmentation training pool with a
//	per-class RNG seeded from (run seed, class label), and carries a fresh
//	32-bit jitter seed derived from (run seed, class label, copy slot), so
//	two runs with equal seeds produce byte-identical datasets while classes
//	and slots stay decorrelated. Augmented negated copies keep their base
//	record's slash key. A per-class cap truncates each partition after
//	augmentation.
//
// Errors
//
//   - ErrBadSplit        — validation fraction outside (0, 0.5).
//   - ErrNoSamples       — a class's closure reaches no stored sample.
//   - ErrNoSlashSamples  — negations declared but no slash strokes stored.
//   - ErrOptionViolation — invalid option combination.
package dataset
