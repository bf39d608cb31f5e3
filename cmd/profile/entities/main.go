// Profiling:
// go build ./cmd/profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/northfield-games/bitecs"
	"github.com/northfield-games/bitecs/internal/demo"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		ctx := demo.NewContext()
		g := ctx.AddGroup()
		ctx.ReserveEntities(g, numEntities)

		for range iters {
			ids := make([]bitecs.EntityID, 0, numEntities)
			for i := 0; i < numEntities; i++ {
				e := ctx.AddEntity(g)
				bitecs.Add(ctx, e, func(gr *demo.Group) *bitecs.TypedManager[demo.Position] { return gr.Positions }, demo.Position{}).Release()
				bitecs.Add(ctx, e, func(gr *demo.Group) *bitecs.TypedManager[demo.Velocity] { return gr.Velocity }, demo.Velocity{}).Release()
				ids = append(ids, e)
			}
			for _, e := range ids {
				ctx.RemoveEntity(e)
			}
		}
	}
}
