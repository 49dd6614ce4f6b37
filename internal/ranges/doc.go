package ranges

// Package ranges keeps the ordered list of user-entered date ranges and
// derives durations, gaps and display rows from it on demand. Insertion
// order defines adjacency; nothing is cached between queries.
