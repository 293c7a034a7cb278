package govjobs_test

import (
	"testing"

	"github.com/fwojciec/govjobs"
	"github.com/stretchr/testify/assert"
)

func TestClassifyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  govjobs.JobType
	}{
		{"SSC CHSL Recruitment 2025 Apply Online", govjobs.TypeRecruitment},
		{"IBPS PO Admit Card 2025", govjobs.TypeAdmitCard},
		{"UPSC Civil Services Result 2025", govjobs.TypeResult},
		{"RRB NTPC Answer Key 2025", govjobs.TypeAnswerKey},
		{"SSC GD Result and Admit Card Status", govjobs.TypeAdmitCard},
		{"CTET Answer Key and Result 2025", govjobs.TypeResult},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, govjobs.ClassifyType(tt.title))
		})
	}
}

func TestClassifyCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  govjobs.Category
	}{
		{"ssc", "SSC CHSL Recruitment 2025 Apply Online", govjobs.CategorySSC},
		{"staff selection", "Staff Selection Commission MTS Online Form", govjobs.CategorySSC},
		{"upsc", "UPSC Civil Services Result 2025", govjobs.CategoryUPSC},
		{"banking", "IBPS PO Admit Card 2025", govjobs.CategoryBanking},
		{"railway", "RRB NTPC Answer Key 2025", govjobs.CategoryRailway},
		{"defence", "Indian Army Agniveer Online Form 2025", govjobs.CategoryDefence},
		{"rajasthan", "RPSC School Lecturer Recruitment 2025", govjobs.CategoryRajasthan},
		{"up", "Uttar Pradesh Lekhpal Recruitment 2025", govjobs.CategoryUP},
		{"bihar", "BPSC TRE Teacher Recruitment 2025", govjobs.CategoryBihar},
		{"mp", "MPESB Teacher Recruitment 2025", govjobs.CategoryMP},
		{"police", "Constable GD Recruitment 2025", govjobs.CategoryPolice},
		{"default", "Delhi High Court Junior Assistant Recruitment 2025", govjobs.CategoryCentralGovt},
		{"keywords match inside words", "Haryana Police Constable Recruitment 2025", govjobs.CategoryBanking},
		{"earlier rule wins", "UPSSSC PET Recruitment 2025", govjobs.CategorySSC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, govjobs.ClassifyCategory(tt.title))
		})
	}
}
