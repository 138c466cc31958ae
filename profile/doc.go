// Package profile provides optional runtime profiling for pbxsetting.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without it, [Profiler.Start] returns a no-op and [Modes] is empty.
//
// With the tag, [github.com/pkg/profile] writes one profile per run into the
// configured directory, and [net/http/pprof] handlers are registered on
// [net/http.DefaultServeMux]. The supported modes are allocs, block, clock,
// cpu, goroutine, heap, mem, mutex, thread and trace.
//
// Analyze the output with the pprof tool:
//
//	pbxsetting --pprof-mode=cpu parse '$(SRCROOT)/$(PRODUCT_NAME)'
//	go tool pprof -http=: ~/.cache/pbxsetting/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable profiling.
const Tag = "pprof"
