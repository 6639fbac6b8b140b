/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// Command iontok prints the token stream that the iontext tokenizer
// produces for a file or for stdin, one token per line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ion-text-go/tokenizer/iontext"
)

func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "tokens":
		err = tokens(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  iontok help")
	fmt.Println("  iontok tokens [file]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help      Prints this help message.")
	fmt.Println("  tokens    Prints the token stream for the given file, or stdin if none is given.")
}

// tokens reads Ion text from the named file (or stdin, if args is empty)
// and prints every token it classifies, descending into struct, sexp, and
// list bodies so that their contents are printed too.
func tokens(args []string) error {
	r := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	tok := iontext.New(r)
	for {
		if err := tok.Next(); err != nil {
			return err
		}

		kind := tok.CurrentToken()
		fmt.Printf("%d: %s\n", tok.Position(), kind)

		if kind == iontext.EOF {
			return nil
		}

		// Descend into every container rather than skip over it, so the
		// full token stream gets printed. OpenBrace is already finished
		// (its body is stepped into by default); list and sexp openers
		// need SetFinished to suppress their automatic skip-over-body
		// behavior.
		if !tok.Finished() {
			switch kind {
			case iontext.OpenParen, iontext.OpenBracket:
				tok.SetFinished()
			}
		}
	}
}
