// Command hrtfgen converts an HRTF measurement tree into C array
// declarations written to stdout.
//
//	hrtfgen -i MIT-KEMAR/full > mit_kemar_hrtf_data.h
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
