package mcclellan

import (
	"strconv"
	"strings"
)

// rawReportInfo is the deduplicated table of report-ID sets collected
// across every state: the Go equivalent of raw_report_info_impl. Each
// entry is later written to the image as a {count, ids[]} record.
type rawReportInfo struct {
	lists [][]ReportID
}

func (ri *rawReportInfo) listSize() uint32 {
	var size uint32
	for _, l := range ri.lists {
		size += 4 + uint32(len(l))*4
	}
	return size
}

// fillReportLists writes every deduplicated report-list record to im
// starting at baseOffset (an image-start-relative byte offset) and returns,
// for each list index, the offset of its record.
func (ri *rawReportInfo) fillReportLists(im *Image, baseOffset uint32) []uint32 {
	offsets := make([]uint32, len(ri.lists))
	cur := baseOffset
	for idx, l := range ri.lists {
		offsets[idx] = cur
		im.putU32(cur, uint32(len(l)))
		for k, rep := range l {
			im.putU32(cur+4+uint32(k)*4, uint32(rep))
		}
		cur += 4 + uint32(len(l))*4
	}
	return offsets
}

// lessReportList is the lexicographic total order over sorted report-ID
// sequences.
func lessReportList(a, b []ReportID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func reportKey(sorted []ReportID) string {
	var b strings.Builder
	for i, r := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(r), 10))
	}
	return b.String()
}

// gatherReports deduplicates every state's Reports/ReportsEOD set into a
// packed table. The
// returned reports/reportsEOD slices index by raw StateID into ri.lists,
// using InvalidIndex for a state with no reports of that flavor.
//
// isSingleReport is true iff the union of every accepting state's (non-EOD)
// report set has cardinality 1 — the runtime then skips per-state lookup
// entirely and uses the single arbReport ID directly.
func gatherReports(info *dfaInfo) (reports, reportsEOD []uint32, isSingleReport bool, arbReport ReportID, ri *rawReportInfo) {
	ri = &rawReportInfo{}
	rev := make(map[string]uint32)

	reports = make([]uint32, info.size())
	reportsEOD = make([]uint32, info.size())

	for i := 0; i < info.size(); i++ {
		st := info.state(StateID(i))
		if len(st.Reports) == 0 {
			reports[i] = InvalidIndex
			continue
		}
		sorted := st.reportsSorted()
		key := reportKey(sorted)
		if idx, ok := rev[key]; ok {
			reports[i] = idx
			continue
		}
		idx := uint32(len(ri.lists))
		rev[key] = idx
		ri.lists = append(ri.lists, sorted)
		reports[i] = idx
	}

	for i := 0; i < info.size(); i++ {
		st := info.state(StateID(i))
		if len(st.ReportsEOD) == 0 {
			reportsEOD[i] = InvalidIndex
			continue
		}
		sorted := st.reportsEODSorted()
		key := reportKey(sorted)
		if idx, ok := rev[key]; ok {
			reportsEOD[i] = idx
			continue
		}
		idx := uint32(len(ri.lists))
		rev[key] = idx
		ri.lists = append(ri.lists, sorted)
		reportsEOD[i] = idx
	}

	if len(ri.lists) > 0 {
		best := ri.lists[0]
		for _, l := range ri.lists[1:] {
			if lessReportList(l, best) {
				best = l
			}
		}
		arbReport = best[0]
	}

	reps := make(map[ReportID]struct{})
	for _, idx := range reports {
		if idx == InvalidIndex {
			continue
		}
		for _, r := range ri.lists[idx] {
			reps[r] = struct{}{}
		}
	}

	if len(reps) == 1 {
		isSingleReport = true
		for r := range reps {
			arbReport = r
		}
	}

	return reports, reportsEOD, isSingleReport, arbReport, ri
}
