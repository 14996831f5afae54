package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentLabelRankOrdering(t *testing.T) {
	assert.Greater(t, LabelHigh.Rank(), LabelMedium.Rank())
	assert.Greater(t, LabelMedium.Rank(), LabelLow.Rank())
	assert.Greater(t, LabelLow.Rank(), LabelUnset.Rank())
}

func TestSegmentLabelValid(t *testing.T) {
	assert.True(t, LabelHigh.Valid())
	assert.True(t, LabelMedium.Valid())
	assert.True(t, LabelLow.Valid())
	assert.False(t, LabelUnset.Valid())
	assert.False(t, SegmentLabel("VeryHigh").Valid())
}

func TestParseSegmentLabel(t *testing.T) {
	assert.Equal(t, LabelHigh, ParseSegmentLabel("High"))
	assert.Equal(t, LabelHigh, ParseSegmentLabel(" high "))
	assert.Equal(t, LabelMedium, ParseSegmentLabel("MEDIUM"))
	assert.Equal(t, LabelLow, ParseSegmentLabel("low"))
	assert.Equal(t, LabelUnset, ParseSegmentLabel(""))
	assert.Equal(t, LabelUnset, ParseSegmentLabel("unknown"))
}
