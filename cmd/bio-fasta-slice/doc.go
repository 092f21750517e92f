/*Command bio-fasta-slice prints the length of a FASTA sequence and a slice
  of it.

  Every line that does not start with '>' is appended to one sequence, so
  multi-record files are read as the concatenation of their records.  The
  whole file is read into memory; no index is used.

  Usage: bio-fasta-slice file.fa start end

  The first output line is "<length> bp".  The second is the substring
  [start, end) of the sequence, 0-based.  Negative offsets count from the end
  of the sequence, offsets past the end are clamped, and start >= end prints
  an empty line.  Inputs ending in .gz are decompressed.
*/
package main
