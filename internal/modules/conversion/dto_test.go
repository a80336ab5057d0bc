package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_NilRequest(t *testing.T) {
	var req *ConvertLeadRequest
	got := req.normalize()
	assert.False(t, got.createOpportunity)
	assert.Nil(t, got.amount)
}

func TestNormalize_LegacyFieldsImplyOpportunity(t *testing.T) {
	got := (&ConvertLeadRequest{PipelineStage: "proposal"}).normalize()
	assert.True(t, got.createOpportunity)

	got = (&ConvertLeadRequest{PipelineValue: f64Ptr(250)}).normalize()
	assert.True(t, got.createOpportunity)
	if assert.NotNil(t, got.amount) {
		assert.Equal(t, float64(250), *got.amount)
	}

	got = (&ConvertLeadRequest{}).normalize()
	assert.False(t, got.createOpportunity)
}

func TestNormalize_CurrentAmountWinsOverLegacy(t *testing.T) {
	got := (&ConvertLeadRequest{
		OpportunityAmount: f64Ptr(900),
		PipelineValue:     f64Ptr(100),
	}).normalize()
	assert.True(t, got.createOpportunity)
	assert.Equal(t, float64(900), *got.amount)
}
