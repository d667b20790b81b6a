package closure_test

import (
	"fmt"
	"testing/fstest"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/symbols"
)

// ExampleArena_Closure derives alpha from its similarity twin and from two
// rotationally related symbols, one of them through an intermediate hop.
func ExampleArena_Closure() {
	fsys := fstest.MapFS{
		"similar.txt": {Data: []byte("alpha alpha-var\ngamma\ndelta\n")},
		"symmetry.yaml": {Data: []byte(
			"edges:\n" +
				"  - {target: alpha, source: gamma, chain: [rot90]}\n" +
				"  - {target: gamma, source: delta, chain: [rot90]}\n",
		)},
	}

	model, err := symbols.Load(fsys)
	if err != nil {
		panic(err)
	}
	arena, err := closure.NewArena(model)
	if err != nil {
		panic(err)
	}

	c, err := arena.Closure("alpha")
	if err != nil {
		panic(err)
	}
	for _, p := range c.Paths() {
		fmt.Printf("%s %q\n", p.Source, p.Chain.Encode())
	}

	// Output:
	// alpha ""
	// alpha-var ""
	// gamma "rot90"
	// delta "rot90,rot90"
}
