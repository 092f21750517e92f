/*Package lcr finds low-complexity regions in DNA sequences.

  A region is scored by how repetitive its k-mers are.  For a string x with
  n = len(x)-k+1 k-mers, where the distinct k-mers occur c_1, c_2, ... times,

    score(x) = sum_i ln(c_i!) - T*n

  for a threshold T.  Each k-mer costs T and each repeat of a k-mer already
  seen earns back ln of its new count, so unique sequence scores negative and
  tandem repeats or homopolymers score positive.

  Find scans a sequence once.  It keeps k-mer counts over a sliding window of
  recent k-mers, opens a run at the first k-mer whose repeat earns more than
  it costs, and closes the run when its running score falls to zero or below,
  at a non-ACGT base, or at the end of the sequence.  A closed run is
  reported from its start up to its best-scoring k-mer, if that region scores
  at least T.  Coordinates are 0-based and inclusive at both ends.
*/
package lcr
