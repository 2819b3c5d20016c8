package capability

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/camparam/camparam-go/pkg/attr"
)

// ThumbnailSizes lists the JPEG thumbnail sizes accepted on every device.
// The first entry is the default.
var ThumbnailSizes = []Size{
	{512, 288},
	{480, 288},
	{256, 154},
	{432, 288},
	{320, 240},
	{176, 144},
}

// DescribeSizes renders sizes as "WxH,WxH,...".
func DescribeSizes(sizes []Size) string {
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}

// DescribeFPSRanges renders ranges as "(min,max),..." in milli-fps.
func DescribeFPSRanges(ranges []FPSRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, fmt.Sprintf("(%d,%d)", r.MilliMin(), r.MilliMax()))
	}
	return strings.Join(parts, ",")
}

// DescribeFPSValues renders the upper bound of each range in milli-fps.
func DescribeFPSValues(ranges []FPSRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, strconv.Itoa(r.MilliMax()))
	}
	return strings.Join(parts, ",")
}

// DescribeZoomRatios renders the zoom ratio table.
func DescribeZoomRatios(ratios []int) string {
	parts := make([]string, 0, len(ratios))
	for _, r := range ratios {
		parts = append(parts, strconv.Itoa(r))
	}
	return strings.Join(parts, ",")
}

// DescribeHFRModes renders the mode token of each HFR entry in input order.
func DescribeHFRModes(hfr []HFRInfo, t attr.Table) string {
	codes := make([]int, 0, len(hfr))
	for _, h := range hfr {
		codes = append(codes, h.Mode)
	}
	return attr.DescribeCodes(codes, t)
}

// DescribeHFRSizes renders the size of each HFR entry.
func DescribeHFRSizes(hfr []HFRInfo) string {
	sizes := make([]Size, 0, len(hfr))
	for _, h := range hfr {
		sizes = append(sizes, h.Size)
	}
	return DescribeSizes(sizes)
}
