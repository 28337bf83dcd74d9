package main

import (
	"os"
	_ "time/tzdata"
)

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run())
}
