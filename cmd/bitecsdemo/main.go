// Command bitecsdemo runs a one-shot add/remove workload over a single
// bitecs.Context and prints the resulting component counts, for quick
// manual sanity checks and rough timing without a full profiler.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/northfield-games/bitecs"
	"github.com/northfield-games/bitecs/internal/demo"
	flag "github.com/spf13/pflag"
)

func main() {
	groups := flag.IntP("groups", "g", 1, "number of groups to create")
	entities := flag.IntP("entities", "e", 10000, "entities to add per group")
	removeFrac := flag.Float64P("remove-fraction", "r", 0.5, "fraction of entities to remove afterward (0-1)")
	flag.Parse()

	if *groups < 1 {
		fmt.Fprintln(os.Stderr, "error: --groups must be at least 1")
		os.Exit(1)
	}
	if *removeFrac < 0 || *removeFrac > 1 {
		fmt.Fprintln(os.Stderr, "error: --remove-fraction must be within [0, 1]")
		os.Exit(1)
	}

	ctx := demo.NewContext()
	ctx.ReserveGroups(*groups)

	start := time.Now()
	for i := 0; i < *groups; i++ {
		g := ctx.AddGroup()
		ctx.ReserveEntities(g, *entities)

		ids := make([]bitecs.EntityID, 0, *entities)
		for j := 0; j < *entities; j++ {
			e := ctx.AddEntity(g)
			bitecs.Add(ctx, e, func(gr *demo.Group) *bitecs.TypedManager[demo.Position] { return gr.Positions }, demo.Position{}).Release()
			bitecs.SetFlag(ctx, e, func(gr *demo.Group) *bitecs.FlagManager { return gr.Visible }, true)
			ids = append(ids, e)
		}

		toRemove := int(float64(*entities) * *removeFrac)
		for _, e := range ids[:toRemove] {
			ctx.RemoveEntity(e)
		}

		group := ctx.Group(g)
		fmt.Printf("group %d: %d positions remaining (%d visible flags before removal)\n",
			i, group.Positions.Len(), len(ids))
	}
	fmt.Printf("done in %s\n", time.Since(start))
}
