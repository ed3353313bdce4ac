// Package bruteforce provides a point index that answers kNN and radius
// queries by scanning all stored points. It is exact by construction, which
// makes it a usable baseline for small point sets and the oracle for
// verifying the k-d tree implementation.
package bruteforce
