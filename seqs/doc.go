/*
Package seqs provides a combinator library for Go 1.23+ iterators (iter.Seq)
built around two primitives: a bidirectional fold and its dual, an unfold.

Nearly every operation here is a derived form of one of them:

  - **Fold**: [Fold] threads a strict left accumulator forward and a lazy
    right accumulator backward over the same pass. [Map], [Filter], [Reduce],
    [FoldRight], [Scan], [Reverse], [MapAccum] are all folds.
  - **Unfold**: [Unfold] grows a sequence from a seed. [Generate], [Repeat],
    [Replicate], [ZipWith], [MergeFunc] are all unfolds.
  - **Flow Control**: [Take], [Drop], [Span], [Group], [Inits], [Tails],
    [Window], [Chunk].
  - **Ordering**: [SortFunc] (stable mergesort), [Insert], [InsertBefore].

# Laziness

Sequences are consumed on demand. Derived operations document which
accumulator they force: operations that only touch the lazy right
accumulator ([Map], [Filter], [TakeWhile], ...) work on unbounded
sequences, while strict operations ([Reduce], [Reverse], [SortFunc], ...)
require finite input. [FoldRight] recurses along the sequence and is the
one family with stack depth proportional to length; everything else runs
in constant stack.

Sequences passed in should be re-iterable (pure): several combinators
([Inits], [Tails], [Cycle], [HasSuffixFunc]) walk their input more than
once.

# Error Handling

Partial operations ([First], [Last], [Reduce1], [Minimum], ...) return
[ErrEmpty] on empty input, and counted operations ([Take], [Drop],
[Replicate], ...) return [ErrNegativeCount] on a negative count. Both are
sentinels, testable with errors.Is. "Try" variants ([TryMap], [TryFilter],
[TryReduce]) carry element-level errors through the stream instead.
*/
package seqs
