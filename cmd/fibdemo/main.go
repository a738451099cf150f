// Command fibdemo is a small driver that exercises the fibheap package: it
// schedules a batch of jobs with random priorities, promotes a few of them
// with DecreaseKey, dumps the forest shape, and then drains the heap in
// order.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/heapforge/fibheap"
)

type job struct {
	name     string
	priority int
}

func main() {
	rng := rand.New(rand.NewSource(22))

	h := fibheap.New[job](func(a, b job) int { return a.priority - b.priority })

	var handles []fibheap.Handle[job]
	for i := 0; i < 20; i++ {
		j := job{name: fmt.Sprintf("job-%d", i), priority: rng.Intn(1000)}
		handles = append(handles, h.Insert(j))
	}

	for i := 0; i < 3; i++ {
		cur := handles[i].Element()
		h.DecreaseKey(handles[i], job{name: cur.name, priority: -1 - i})
	}

	fmt.Println("forest before draining:")
	h.Dump(os.Stdout)

	fmt.Println("draining:")
	for {
		handle, ok := h.ExtractMin()
		if !ok {
			break
		}
		j := handle.Element()
		fmt.Printf("  %s priority=%d\n", j.name, j.priority)
	}
}
