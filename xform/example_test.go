package xform_test

import (
	"fmt"

	"github.com/katalvlaran/glyphtrain/xform"
)

// ExampleChain_Equivalent shows that chains compare by net effect,
// not by how they are written.
func ExampleChain_Equivalent() {
	a := xform.Chain{xform.Rot(90), xform.Rot(90)}
	b := xform.Chain{xform.Rot(180)}
	fmt.Println(a.Equivalent(b))
	fmt.Println(a.Encode(), "vs", b.Encode())
	// Output:
	// true
	// rot90,rot90 vs rot180
}

// ExampleParseChain parses the canonical token encoding used in the
// relation-model files.
func ExampleParseChain() {
	c, _ := xform.ParseChain("rot90,mir45")
	fmt.Println(len(c), c.Encode())
	// Output: 2 rot90,mir45
}
