/*Command bio-tsv-compare compares two tab-separated files of named
  coordinates.

  Both files need a header row with the columns Name, Start and End; other
  columns are ignored.  Rows are grouped by Name into a multiset of
  (Start, End) pairs, and the two files match when every name maps to the
  same multiset.  Row order is ignored; duplicate rows are counted.

  Usage: bio-tsv-compare [-format text|tsv] [-exit-status] file1.tsv file2.tsv

  The default text report lists, in name order, the names present in only
  one file and, for names present in both, every coordinate pair whose count
  differs.  If nothing differs it prints a single line saying so.  With
  -format=tsv the same information is written as a table.

  The exit status is 0 whether or not the files differ, unless -exit-status
  is given, in which case differences exit with status 1.  Usage errors and
  unreadable or malformed inputs always exit with status 1.

  Inputs ending in .gz are decompressed.
*/
package main
