// Package token splits binding expression source text into tokens: dotted
// and bracketed data paths, and the comma separated argument lists of
// function calls.
package token
