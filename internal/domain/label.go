package domain

import "strings"

// SegmentLabel is the ordinal sales-value classification of a product.
// High > Medium > Low. The zero value means the product has never been
// through segmentation.
type SegmentLabel string

const (
	LabelUnset  SegmentLabel = ""
	LabelHigh   SegmentLabel = "High"
	LabelMedium SegmentLabel = "Medium"
	LabelLow    SegmentLabel = "Low"
)

var labelRanks = map[SegmentLabel]int{
	LabelHigh:   3,
	LabelMedium: 2,
	LabelLow:    1,
}

// Valid reports whether l is one of the three assigned labels.
func (l SegmentLabel) Valid() bool {
	_, ok := labelRanks[l]
	return ok
}

// Rank returns the ordinal rank of the label (High=3, Medium=2, Low=1,
// unset=0) so callers can compare labels without string switches.
func (l SegmentLabel) Rank() int {
	return labelRanks[l]
}

// ParseSegmentLabel maps a stored label value back to a SegmentLabel,
// case-insensitively. Unknown values map to LabelUnset.
func ParseSegmentLabel(s string) SegmentLabel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return LabelHigh
	case "medium":
		return LabelMedium
	case "low":
		return LabelLow
	}
	return LabelUnset
}

// AlertPriority is the urgency attached to a restock alert.
type AlertPriority string

const (
	PriorityUrgent AlertPriority = "Urgent"
	PriorityMedium AlertPriority = "Medium"
	PriorityLow    AlertPriority = "Low"
)
