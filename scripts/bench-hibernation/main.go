// bench-hibernation measures heap memory before and after hibernating
// the arena of a large llrb set.
//
// Usage:
//
//	go run ./scripts/bench-hibernation --elements 5000000 \
//	  --profile-dir /tmp/llrb-hibernation
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/Sumatoshi-tech/llrbset/pkg/llrb"
)

func main() {
	elements := flag.Int("elements", 1_000_000, "Number of elements to insert")
	churn := flag.Int("churn", 0, "Number of take-min/insert cycles before hibernating")
	profileDir := flag.String("profile-dir", "", "Directory to write heap profiles (optional)")

	flag.Parse()

	tree := llrb.New[int64]()
	rng := rand.New(rand.NewSource(1))

	for range *elements {
		tree.Insert(rng.Int63())
	}

	for range *churn {
		if _, ok := tree.TakeMin(); !ok {
			break
		}

		tree.Insert(rng.Int63())
	}

	report := func(label string) {
		runtime.GC()

		var m runtime.MemStats

		runtime.ReadMemStats(&m)
		fmt.Printf("%-12s heap=%d MiB objects=%d\n", label, m.HeapAlloc>>20, m.HeapObjects)

		if *profileDir != "" {
			writeHeapProfile(*profileDir, label)
		}
	}

	report("live")

	tree.Allocator().Hibernate()
	report("hibernated")

	tree.Allocator().Boot()
	report("booted")

	if err := tree.Validate(); err != nil {
		log.Fatalf("tree invalid after boot: %v", err)
	}
}

func writeHeapProfile(dir, label string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("mkdir profile-dir: %v", err)
	}

	path := filepath.Join(dir, label+".prof")

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create heap profile: %v", err)
	}

	defer f.Close()

	if writeErr := pprof.WriteHeapProfile(f); writeErr != nil {
		log.Fatalf("write heap profile: %v", writeErr)
	}
}
