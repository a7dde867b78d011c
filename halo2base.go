// Package halo2base provides the virtual-region circuit-assembly layer used to
// build zero-knowledge proof circuits. Callers describe cells to assign via
// [QuantumCell] descriptors; a [Context] turns them into one ordered advice
// column with a parallel selector column, and forwards copy (equality)
// constraints to a [CopyConstraintManager] shared by every context of a build.
//
// A Context runs in one of two modes fixed at construction. During keygen
// (witnessGenOnly == false) every assigned cell carries a [ContextCell]
// address and equality constraints are recorded. During witness generation
// (witnessGenOnly == true) only the raw values are produced: cells carry no
// address, nothing is sent to the copy manager, and many contexts can run on
// separate goroutines without synchronization. The same assignment sequence
// must be replayed in both modes so that the advice columns match row for row.
package halo2base
