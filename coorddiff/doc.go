/*Package coorddiff compares two sets of named coordinate records.

  Records are grouped by name into a multiset of (start, end) pairs; two
  inputs match when every name maps to the same multiset in both.  Record
  order never matters, but duplicates do: a pair listed twice in one input
  and once in the other is a difference.

  Names and pairs are reported in sorted order so that the report is
  deterministic.
*/
package coorddiff
