// Package fasta checks the line structure of FASTA files.
//
// A file is a sequence of records. Each record starts with a header line
// beginning with '>' and is followed by zero or more sequence lines. Blank
// lines are ignored anywhere. Sequence lines must not contain whitespace
// and must not appear before the first header.
//
// Scan walks the file once with an explicit three-state machine
// (start, in header, in sequence) and stops at the first violation.
package fasta
