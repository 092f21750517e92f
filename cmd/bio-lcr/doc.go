/*Command bio-lcr finds low-complexity regions in the records of a FASTA file.

  Usage: bio-lcr [-k 7] [-threshold 0.6] [-window 5000] [-out path] file.fa

  Each record is scanned on its own.  A region is a stretch of A/C/G/T bases
  whose k-mers repeat often enough that

    sum over distinct k-mers of ln(count!) - T * (number of k-mers)

  reaches T.  Any other base, including N, ends a region.  Overlapping regions
  of a record are merged.

  Output is a tab-separated table with the header

    Name	Start	End	String

  where Name is the first word of the record header, Start and End are 0-based
  and inclusive, and String is the region's bases as they appear in the input.
  Inputs ending in .gz are decompressed.  The output may be any path that
  github.com/grailbio/base/file can create.
*/
package main
