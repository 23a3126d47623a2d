// Package ir defines the node tree that data documents and attribute
// values decode into, together with the contracts that compiled binding
// expressions satisfy. Everything downstream of parsing works on *Node:
// path resolution and assignment, function calls, expansion of composite
// values, and encoding back out.
//
// The binding contracts live here rather than with their implementations
// so that a Node can carry a compiled binding while the compiler packages
// import ir.
package ir
