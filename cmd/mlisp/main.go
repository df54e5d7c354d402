// Command mlisp evaluates MLisp programs.
//
//	mlisp -e '(+ 1 2)'    evaluate one expression and print its value
//	mlisp file...         load files in order
//	mlisp < file          evaluate stdin, printing each non-void result
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/seanburtner/MLisp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlisp: ")
	expr := flag.String("e", "", "evaluate `expr` and print its value")
	flag.Parse()

	if *expr != "" {
		result, err := mlisp.EvalProgram(*expr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(result)
		return
	}
	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			if err := load(name); err != nil {
				log.Fatal(err)
			}
		}
		return
	}
	_, err := mlisp.LoadEach(os.Stdin, mlisp.GlobalEnv, func(v mlisp.Value) {
		if v != mlisp.Void {
			fmt.Println(mlisp.Stringify(v))
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}

// load loads a source code from a file.
func load(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := mlisp.Load(file, mlisp.GlobalEnv); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}
