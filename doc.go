/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Package documentation
 */

/*
Package fixtree implements a FIX Orchestra driven structural parser for
the classic tag-value wire encoding.

It doesn't validate checksums, body length, or required fields, and it
doesn't serialize back to tag-value. Its scope is limited to decoding a
flat, order-significant stream of TAG=VALUE fields into a tree of
scalar fields and repeating groups, driven entirely by an externally
supplied schema rather than hard-coded per-message logic.

	Tokenize -> Parse -> Message.ToJSON

Example:

	package main

	import (
		"fmt"
		"os"

		"github.com/fixorch/fixtree"
		"github.com/fixorch/fixtree/schema"
	)

	func main() {
		f, err := os.Open("orchestra.xml")
		if err != nil {
			panic(err)
		}
		defer f.Close()

		repo, err := schema.Load(f)
		if err != nil {
			panic(err)
		}

		raw := []byte("8=FIX.4.4\x019=75\x0135=A\x0149=ICE\x0134=1\x0110=253\x01")
		msg := fixtree.Parse(raw, repo)
		if msg == nil {
			fmt.Println("no MsgType found")
			return
		}

		fmt.Println(msg.IsAdmin())
		doc, _ := msg.ToJSON()
		os.Stdout.Write(doc)
	}
*/
package fixtree
