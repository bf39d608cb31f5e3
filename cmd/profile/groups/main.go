// Profiling:
// go build ./cmd/profile/groups
// go tool pprof -http=":8000" -nodefraction=0.001 ./groups cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/northfield-games/bitecs"
	"github.com/northfield-games/bitecs/internal/demo"
)

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	groupCount := 100
	entitiesPerGroup := 1000
	run(rounds, groupCount, entitiesPerGroup)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, groupCount, entitiesPerGroup int) {
	for range rounds {
		ctx := demo.NewContext()
		ctx.ReserveGroups(groupCount)

		groups := make([]bitecs.GroupID, 0, groupCount)
		for i := 0; i < groupCount; i++ {
			g := ctx.AddGroup()
			ctx.ReserveEntities(g, entitiesPerGroup)
			groups = append(groups, g)
			for j := 0; j < entitiesPerGroup; j++ {
				e := ctx.AddEntity(g)
				bitecs.Add(ctx, e, func(gr *demo.Group) *bitecs.TypedManager[demo.Position] { return gr.Positions }, demo.Position{}).Release()
				bitecs.Add(ctx, e, func(gr *demo.Group) *bitecs.TypedManager[demo.Velocity] { return gr.Velocity }, demo.Velocity{}).Release()
			}
		}

		for _, g := range groups {
			group := ctx.Group(g)
			count := group.Positions.Len()
			for i := uint16(0); i < count; i++ {
				pos := &group.Positions.Raw()[i]
				vel := &group.Velocity.Raw()[i]
				pos.X += vel.X
				pos.Y += vel.Y
				pos.Z += vel.Z
			}
		}

		for _, g := range groups {
			ctx.RemoveGroup(g)
		}
	}
}
