// mcclellandump prints the header fields and per-state acceleration
// records of a compiled mcclellan image, annotated with the scan kernel
// the current CPU would dispatch each record to.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sys/cpu"

	"github.com/coregx/mcclellan"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <image-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcclellandump: %v\n", err)
		os.Exit(1)
	}

	im, err := mcclellan.FromBytes(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcclellandump: %v\n", err)
		os.Exit(1)
	}

	dump(im)
}

func dump(im *mcclellan.Image) {
	width := 16
	if im.Type == mcclellan.MCClellanNFA8 {
		width = 8
	}

	fmt.Printf("mcclellan %d-bit image, %d bytes\n", width, im.Length())
	fmt.Printf("  states:         %d\n", im.StateCount())
	fmt.Printf("  alpha shift:    %d\n", im.AlphaShift())
	fmt.Printf("  start anchored: %d\n", im.StartAnchored())
	fmt.Printf("  start floating: %d\n", im.StartFloating())
	fmt.Printf("  accepts eod:    %v\n", im.AcceptsEOD())
	fmt.Printf("  has accel:      %v\n", im.HasAccel())
	if im.IsSingleReport() {
		fmt.Printf("  single report:  %d\n", im.ArbReport())
	}
	if im.Type == mcclellan.MCClellanNFA16 {
		fmt.Printf("  sherman limit:  %d\n", im.ShermanLimit())
	} else {
		fmt.Printf("  accel limit:    %d\n", im.AccelLimit8())
		fmt.Printf("  accept limit:   %d\n", im.AcceptLimit8())
	}

	entries := im.AccelEntries()
	if len(entries) == 0 {
		return
	}

	ids := make([]uint32, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Printf("accel records:\n")
	for _, id := range ids {
		aux := entries[id]
		fmt.Printf("  state %d: %s (%s kernel)", id, aux.Type, kernelName(aux.Type))
		switch aux.Type {
		case mcclellan.AccelVerm, mcclellan.AccelVermNocase:
			fmt.Printf(" c=%q", aux.C1)
		case mcclellan.AccelDverm, mcclellan.AccelDvermNocase:
			fmt.Printf(" c1=%q c2=%q", aux.C1, aux.C2)
		}
		fmt.Println()
	}
}

// kernelName reports which scan kernel variant the runtime would pick for
// an acceleration record on this machine.
func kernelName(t mcclellan.AccelType) string {
	switch t {
	case mcclellan.AccelNone, mcclellan.AccelRedTape:
		return "none"
	case mcclellan.AccelShufti, mcclellan.AccelDshufti:
		// Shufti is built on PSHUFB; without it the runtime falls back
		// to a scalar table walk.
		switch {
		case cpu.X86.HasAVX2:
			return "avx2"
		case cpu.X86.HasSSSE3:
			return "ssse3"
		default:
			return "scalar"
		}
	default:
		if cpu.X86.HasAVX2 {
			return "avx2"
		}
		return "sse"
	}
}
