// Command trussctl parses, checks and solves 2D truss description files.
//
// Usage:
//
//	trussctl solve FILE [--formulation reaction|direct] [--format text|yaml] [--tol X] [--connected]
//	trussctl check FILE
//	trussctl inspect FILE [--format text|yaml]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
