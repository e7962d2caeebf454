package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/dynstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	eng := dynstr.New(dynstr.WithAllocator(dynstr.HeapAllocator()))
	for i := 0; i < 10000; i++ {
		s, err := eng.Create(32)
		if err != nil {
			log.Fatal(err)
		}
		_ = s.Insert(0, []byte("the quick brown fox jumps over the lazy dog"))
		_, _ = s.Find(0, s.Size()-1, []byte("lazy"))
		_ = s.Replace(0, s.Size()-1, []byte("o"), []byte("00"), true, dynstr.ReplaceDual)
		_ = s.Trim(0, s.Size()-1, []byte(" "))
		_ = s.Reverse(0, s.Size()-1)
		_ = s.Destroy()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
