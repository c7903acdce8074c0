//go:build gen
// +build gen

package main

import (
	"log"
	"os"
	"os/exec"
)

// gentables finds the module root itself so it can be run from any
// directory inside the module.
const genPkg = "github.com/charlievieth/utfcase/internal/gentables"

func realMain(args []string) int {
	cmd := exec.Command("go", append([]string{"run", genPkg}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Printf("error running command %q: %v", cmd.Args, err)
		return 1
	}
	return 0
}

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)
	if code := realMain(os.Args[1:]); code != 0 {
		log.Fatal("exit:", code)
	}
}
